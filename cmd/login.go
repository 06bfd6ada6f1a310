package cmd

import (
	"github.com/spf13/cobra"

	"github.com/okonenko/hinge-auth/internal/app"
	"github.com/okonenko/hinge-auth/internal/logger"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Run the SMS and email handshake and save the bearer token",
	Long: `Runs the interactive authentication handshake against the Hinge API.

The login process:
1. Enter your phone number in E.164 format (e.g. +447911123456)
2. Enter the one-time code you receive by SMS (or 'r' to resend it)
3. If the account has email verification, enter the code sent to your email
4. The bearer token and the device identity are saved to the configuration file

Saved device identifiers are reused on the next login so the API sees the
same device. Pass --fresh-device to generate new identifiers instead.`,
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		freshDevice, _ := cmd.Flags().GetBool("fresh-device")

		app.ExecuteLoginCommand(cmd.Context(), appConfig, freshDevice)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	loginCmdFlags := loginCmd.Flags()

	loginCmdFlags.StringP(
		"phone",
		"p",
		"",
		"phone number in E.164 format, skips the phone number prompt.")

	loginCmdFlags.Bool(
		"fresh-device",
		false,
		"discard the persisted device identity and generate a new one.")

	rootCmd.AddCommand(loginCmd)
}
