package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okonenko/hinge-auth/internal/config"
	"github.com/okonenko/hinge-auth/internal/constants"
	"github.com/okonenko/hinge-auth/internal/service/auth"
)

const testBaseConfigContent = `
auth_token: "config_token"
phone_number: "+447911123456"
base_url: "https://prod-api.hingeaws.net"
log_level: "info"
request_timeout: "30s"
max_log_length: "1MB"
sms_resend_cooldown: "30s"
max_input_attempts: 3
`

// writeTestConfig writes the given config content to a temp file and loads it.
func writeTestConfig(t *testing.T, content string) *config.Config {
	t.Helper()

	viper.Reset()

	configPath := filepath.Join(t.TempDir(), "test-config.yaml")

	err := os.WriteFile(
		configPath,
		[]byte(content),
		constants.DefaultFilePermissions,
	) //nolint:gosec // It's a test file.
	require.NoError(t, err)

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	return cfg
}

// newLoginTestCommand creates a test command carrying the login command's flags.
func newLoginTestCommand() *cobra.Command {
	testCmd := &cobra.Command{Use: "test"}
	testCmd.Flags().StringP("phone", "p", "", "phone number")
	testCmd.Flags().Bool("fresh-device", false, "discard persisted device identity")

	return testCmd
}

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "+447911123456", cfg.PhoneNumber)
			},
		},
		{
			name: "phone flag - override phone number",
			flags: map[string]string{
				"phone": "+12025550123",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "+12025550123", cfg.PhoneNumber)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := writeTestConfig(t, testBaseConfigContent)

			testCmd := newLoginTestCommand()

			for flagName, flagValue := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(flagName, flagValue),
					"failed to set flag %s", flagName)
			}

			err := bindFlagsToConfig(testCmd.Flags(), cfg)
			require.NoError(t, err)

			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values are caught during validation.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	cfg := writeTestConfig(t, testBaseConfigContent)

	testCmd := newLoginTestCommand()

	require.NoError(t, testCmd.Flags().Set("phone", "not-a-number"))

	err := bindFlagsToConfig(testCmd.Flags(), cfg)
	require.ErrorIs(t, err, auth.ErrInvalidPhoneNumber)
}

// TestBindFlagsToConfig_UnchangedFlags tests that unchanged flags don't override config values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestBindFlagsToConfig_UnchangedFlags(t *testing.T) {
	cfg := writeTestConfig(t, testBaseConfigContent)

	testCmd := newLoginTestCommand()

	err := bindFlagsToConfig(testCmd.Flags(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "+447911123456", cfg.PhoneNumber)
	assert.Equal(t, "config_token", cfg.AuthToken)
}

// TestBindFlagsToConfig_EmptyFlagSet tests handling of empty flag set.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		AuthToken:   "test_token",
		PhoneNumber: "+447911123456",
		LogLevel:    "info",
	}

	emptyFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	// Calling with an empty flag set should just validate the config.
	err := bindFlagsToConfig(emptyFlags, cfg)
	require.NoError(t, err)
}
