package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/okonenko/hinge-auth/internal/constants"
)

// TestConfigStruct tests the Config struct fields.
func TestConfigStruct(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		AuthToken:         "test_token",
		PhoneNumber:       "+447911123456",
		BaseURL:           "https://prod-api.hingeaws.net",
		LogLevel:          "info",
		RequestTimeout:    "30s",
		MaxLogLength:      "1MB",
		SMSResendCooldown: "30s",
		MaxInputAttempts:  3,
		Device: DeviceConfig{
			SessionID: "0B4B2045-3C6D-4E24-9E6F-2D1B7C5A9F01",
			DeviceID:  "8A3F1C4E-75A1-4D2B-9DA0-6F5E2C8B1A23",
			InstallID: "5D6E7F80-91A2-4B3C-8D4E-5F6A7B8C9D0E",
			Model:     "iPhone 13",
		},
	}

	assert.Equal(t, "test_token", cfg.AuthToken)
	assert.Equal(t, "+447911123456", cfg.PhoneNumber)
	assert.Equal(t, "https://prod-api.hingeaws.net", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "30s", cfg.RequestTimeout)
	assert.Equal(t, "1MB", cfg.MaxLogLength)
	assert.Equal(t, "30s", cfg.SMSResendCooldown)
	assert.Equal(t, int64(3), cfg.MaxInputAttempts)
	assert.Equal(t, "iPhone 13", cfg.Device.Model)
}

// TestConstants tests the constants.
func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1024*1024, DefaultMaxLogLength)
	assert.Equal(t, "https://prod-api.hingeaws.net", HingeBaseURL)
	assert.Equal(t, ".hinge-auth.yaml", DefaultConfigFilename)
}

// TestLoadConfig tests the LoadConfig function.
//
//nolint:tparallel,paralleltest // Viper keeps global state, so these subtests cannot run in parallel.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		missingFile   bool
		expectError   bool
		check         func(*testing.T, *Config)
	}{
		{
			name: "valid config file",
			configContent: `
auth_token: "test_token"
phone_number: "+447911123456"
log_level: "debug"
request_timeout: "45s"
device:
  session_id: "0B4B2045-3C6D-4E24-9E6F-2D1B7C5A9F01"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "test_token", cfg.AuthToken)
				assert.Equal(t, "+447911123456", cfg.PhoneNumber)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "45s", cfg.RequestTimeout)
				assert.Equal(t, "0B4B2045-3C6D-4E24-9E6F-2D1B7C5A9F01", cfg.Device.SessionID)
			},
		},
		{
			name:        "missing config file is not an error",
			missingFile: true,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Empty(t, cfg.AuthToken)
			},
		},
		{
			name:          "invalid yaml",
			configContent: "auth_token: [unterminated",
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			configFilename := filepath.Join(t.TempDir(), "config.yaml")

			if !tt.missingFile {
				require.NoError(t, os.WriteFile(
					configFilename,
					[]byte(tt.configContent),
					constants.DefaultFilePermissions))
			}

			cfg, err := LoadConfig(configFilename)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// TestValidateConfig tests the ValidateConfig function.
//
//nolint:funlen // Table-driven validation tests are naturally long.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      *Config
		expectError error
		check       func(*testing.T, *Config)
	}{
		{
			name:   "empty config gets defaults",
			config: &Config{},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, HingeBaseURL, cfg.BaseURL)
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
				assert.Equal(t, 30*time.Second, cfg.ParsedRequestTimeout)
				assert.Equal(t, uint64(DefaultMaxLogLength), cfg.ParsedMaxLogLength)
				assert.Equal(t, 30*time.Second, cfg.ParsedSMSResendCooldown)
				assert.Equal(t, int64(DefaultMaxInputAttempts), cfg.MaxInputAttempts)
			},
		},
		{
			name: "human-readable max log length",
			config: &Config{
				MaxLogLength: "2KB",
			},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, uint64(2000), cfg.ParsedMaxLogLength)
			},
		},
		{
			name: "invalid base URL",
			config: &Config{
				BaseURL: "not-a-url",
			},
			expectError: ErrInvalidBaseURL,
		},
		{
			name: "unknown log level",
			config: &Config{
				LogLevel: "loud",
			},
			expectError: ErrUnknownLogLevel,
		},
		{
			name: "negative request timeout",
			config: &Config{
				RequestTimeout: "-5s",
			},
			expectError: ErrInvalidRequestTimeout,
		},
		{
			name: "negative resend cooldown",
			config: &Config{
				SMSResendCooldown: "-1s",
			},
			expectError: ErrInvalidSMSResendCooldown,
		},
		{
			name: "negative input attempts",
			config: &Config{
				MaxInputAttempts: -1,
			},
			expectError: ErrInvalidMaxInputAttempts,
		},
		{
			name: "malformed device identifier",
			config: &Config{
				Device: DeviceConfig{
					DeviceID: "not-a-uuid",
				},
			},
			expectError: ErrInvalidDeviceIdentifier,
		},
		{
			name: "valid device identifiers",
			config: &Config{
				Device: DeviceConfig{
					SessionID: "0B4B2045-3C6D-4E24-9E6F-2D1B7C5A9F01",
					DeviceID:  "8A3F1C4E-75A1-4D2B-9DA0-6F5E2C8B1A23",
					InstallID: "5D6E7F80-91A2-4B3C-8D4E-5F6A7B8C9D0E",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(tt.config)

			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)

				return
			}

			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t, tt.config)
			}
		})
	}
}

// TestSaveConfig tests the SaveConfig function.
//
//nolint:tparallel,paralleltest // Viper keeps global state, so these subtests cannot run in parallel.
func TestSaveConfig(t *testing.T) {
	t.Run("updates existing file preserving order", func(t *testing.T) {
		viper.Reset()

		configFilename := filepath.Join(t.TempDir(), "config.yaml")
		originalContent := `# hinge-auth configuration
log_level: "info"
auth_token: "old_token"
phone_number: "+447911123456"
`

		require.NoError(t, os.WriteFile(
			configFilename,
			[]byte(originalContent),
			constants.DefaultFilePermissions))

		viper.SetConfigFile(configFilename)
		require.NoError(t, viper.ReadInConfig())

		cfg := &Config{
			AuthToken: "new_token",
			Device: DeviceConfig{
				SessionID: "0B4B2045-3C6D-4E24-9E6F-2D1B7C5A9F01",
				DeviceID:  "8A3F1C4E-75A1-4D2B-9DA0-6F5E2C8B1A23",
				InstallID: "5D6E7F80-91A2-4B3C-8D4E-5F6A7B8C9D0E",
			},
		}

		require.NoError(t, SaveConfig(cfg))

		written, err := os.ReadFile(configFilename)
		require.NoError(t, err)

		content := string(written)
		assert.Contains(t, content, `auth_token: "new_token"`)
		assert.Contains(t, content, "device:")
		assert.Contains(t, content, `session_id: "0B4B2045-3C6D-4E24-9E6F-2D1B7C5A9F01"`)
		assert.NotContains(t, content, "old_token")

		// log_level still precedes auth_token: key order was preserved.
		assert.Less(t, strings.Index(content, "log_level"), strings.Index(content, "auth_token"))

		// The preset phone number survives the rewrite.
		assert.Contains(t, content, "+447911123456")
	})

	t.Run("creates file when missing", func(t *testing.T) {
		viper.Reset()

		configFilename := filepath.Join(t.TempDir(), "config.yaml")
		viper.SetConfigFile(configFilename)

		cfg := &Config{
			AuthToken: "fresh_token",
			Device: DeviceConfig{
				InstallID: "5D6E7F80-91A2-4B3C-8D4E-5F6A7B8C9D0E",
			},
		}

		require.NoError(t, SaveConfig(cfg))

		written, err := os.ReadFile(configFilename)
		require.NoError(t, err)
		assert.Contains(t, string(written), "fresh_token")
		assert.Contains(t, string(written), "5D6E7F80-91A2-4B3C-8D4E-5F6A7B8C9D0E")
	})
}
