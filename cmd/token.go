package cmd

import (
	"github.com/spf13/cobra"

	"github.com/okonenko/hinge-auth/internal/app"
	"github.com/okonenko/hinge-auth/internal/logger"
)

var (
	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Bearer token management commands",
		Long: `Work with the stored bearer token.

Use 'token inspect' to decode the claims of the stored token.`,
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	tokenInspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Decode the claims of the stored bearer token",
		Long: `Decodes the bearer token saved by 'login' and prints its claims:
subject, issuer, issue and expiry times, and everything else the token
carries. The signature is not verified; the signing key belongs to Hinge.

Pass --token to inspect a token other than the stored one.`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			rawToken, _ := cmd.Flags().GetString("token")

			app.ExecuteTokenInspectCommand(cmd.Context(), appConfig, rawToken)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	tokenInspectCmd.Flags().StringP(
		"token",
		"t",
		"",
		"token to inspect instead of the one in the configuration file.")

	tokenCmd.AddCommand(tokenInspectCmd)
	rootCmd.AddCommand(tokenCmd)
}
