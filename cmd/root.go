package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/okonenko/hinge-auth/internal/config"
	"github.com/okonenko/hinge-auth/internal/logger"
	"github.com/okonenko/hinge-auth/internal/service/auth"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "hinge-auth",
		Short: "Obtain and inspect Hinge bearer tokens from the command line.",
		Long: `Hinge Auth replays the mobile app's authentication handshake against the
Hinge API and stores the resulting bearer token in the configuration file.

The handshake:
1. A fresh install is registered with the identity service
2. A one-time code is sent to your phone number by SMS
3. If the account requires it, a second code is sent to your email
4. The issued bearer token is saved for later use

Use 'login' to run the handshake and 'token inspect' to look at the
claims of the stored token.`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			// Without a subcommand there is nothing to do but explain ourselves.
			_ = cmd.Help()
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = config.ValidateConfig(appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to validate configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("phone"); flag != nil && flag.Changed {
		cfg.PhoneNumber, _ = flags.GetString("phone")

		if err := auth.ValidatePhoneNumber(cfg.PhoneNumber); err != nil {
			return err
		}
	}

	return config.ValidateConfig(cfg)
}
