package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/okonenko/hinge-auth/internal/constants"
	"github.com/okonenko/hinge-auth/internal/logger"
)

// DeviceConfig holds the persisted device identity and profile overrides.
// Identifiers are uppercase v4 UUIDs; empty identifiers are generated on first login.
type DeviceConfig struct {
	// SessionID is the x-session-id identifier.
	SessionID string `mapstructure:"session_id"`
	// DeviceID is the x-device-id identifier.
	DeviceID string `mapstructure:"device_id"`
	// InstallID is the x-install-id identifier.
	InstallID string `mapstructure:"install_id"`
	// AppVersion overrides the simulated app version.
	AppVersion string `mapstructure:"app_version"`
	// BuildNumber overrides the simulated build number.
	BuildNumber string `mapstructure:"build_number"`
	// Model overrides the simulated device model name.
	Model string `mapstructure:"model"`
	// ModelCode overrides the simulated device model code.
	ModelCode string `mapstructure:"model_code"`
	// OSVersion overrides the simulated OS version.
	OSVersion string `mapstructure:"os_version"`
	// Region overrides the simulated device region.
	Region string `mapstructure:"region"`
	// Locale overrides the accept-language value.
	Locale string `mapstructure:"locale"`
}

// Config holds all configuration settings.
type Config struct {
	// AuthToken is the bearer token obtained by the login flow.
	AuthToken string `mapstructure:"auth_token"`
	// PhoneNumber is an optional preset phone number in E.164 format.
	// When set, the login flow skips the phone number prompt.
	PhoneNumber string `mapstructure:"phone_number"`
	// BaseURL is the API origin. Empty means the production origin.
	BaseURL string `mapstructure:"base_url"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the per-request HTTP timeout (e.g., "30s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxLogLength is the maximum dumped request/response size for debug
	// HTTP logging (e.g., "1MB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// SMSResendCooldown is the wait imposed before an SMS code resend (e.g., "30s").
	SMSResendCooldown string `mapstructure:"sms_resend_cooldown"`
	// MaxInputAttempts bounds re-prompts for invalid console input.
	MaxInputAttempts int64 `mapstructure:"max_input_attempts"`
	// Device is the persisted device identity and profile.
	Device DeviceConfig `mapstructure:"device"`

	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed HTTP timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMaxLogLength is the parsed max log length in bytes.
	ParsedMaxLogLength uint64
	// ParsedSMSResendCooldown is the parsed resend cooldown.
	ParsedSMSResendCooldown time.Duration
}

const (
	// HingeBaseURL is the production API origin.
	HingeBaseURL = "https://prod-api.hingeaws.net"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".hinge-auth.yaml"

	// DefaultMaxLogLength is the default maximum size (in bytes) for dumped HTTP traffic.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultRequestTimeout is the default HTTP timeout used when request_timeout is unset.
	DefaultRequestTimeout = "30s"

	// DefaultSMSResendCooldown is the default wait before an SMS resend is allowed.
	DefaultSMSResendCooldown = "30s"

	// DefaultMaxInputAttempts is the default bound on console input re-prompts.
	DefaultMaxInputAttempts = 3

	// DefaultLogLevel is the log level used when log_level is unset.
	DefaultLogLevel = "info"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidBaseURL indicates that the base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute http(s) URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidSMSResendCooldown indicates that the resend cooldown is invalid.
	ErrInvalidSMSResendCooldown = errors.New("sms_resend_cooldown must be positive")
	// ErrInvalidMaxInputAttempts indicates that the input attempts bound is invalid.
	ErrInvalidMaxInputAttempts = errors.New("max_input_attempts must be a positive integer")
	// ErrInvalidDeviceIdentifier indicates that a persisted device identifier is not a valid UUID.
	ErrInvalidDeviceIdentifier = errors.New("device identifier must be a valid UUID")
	// ErrEmptyAuthToken indicates that the authentication token is missing.
	ErrEmptyAuthToken = errors.New("authentication token cannot be empty; run 'hinge-auth login' first")
)

// LoadConfig loads configuration settings from a YAML file.
// A missing config file is not an error: the login flow is expected to
// create it when it persists the first token.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = HingeBaseURL
	}

	parsedBaseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || !parsedBaseURL.IsAbs() || parsedBaseURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if cfg.RequestTimeout == "" {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength == "" || maxLogLength == "0" {
		cfg.ParsedMaxLogLength = DefaultMaxLogLength
	} else {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	if cfg.SMSResendCooldown == "" {
		cfg.SMSResendCooldown = DefaultSMSResendCooldown
	}

	cfg.ParsedSMSResendCooldown, err = time.ParseDuration(cfg.SMSResendCooldown)
	if err != nil {
		return fmt.Errorf("failed to parse SMS resend cooldown: %w", err)
	}

	if cfg.ParsedSMSResendCooldown <= 0 {
		return ErrInvalidSMSResendCooldown
	}

	if cfg.MaxInputAttempts == 0 {
		cfg.MaxInputAttempts = DefaultMaxInputAttempts
	}

	if cfg.MaxInputAttempts < 0 {
		return ErrInvalidMaxInputAttempts
	}

	return validateDeviceIdentifiers(&cfg.Device)
}

// validateDeviceIdentifiers ensures persisted identifiers are well-formed UUIDs.
// Empty identifiers are allowed: they are generated on first login.
func validateDeviceIdentifiers(device *DeviceConfig) error {
	identifiers := map[string]string{
		"session_id": device.SessionID,
		"device_id":  device.DeviceID,
		"install_id": device.InstallID,
	}

	for name, value := range identifiers {
		if value == "" {
			continue
		}

		if _, err := uuid.Parse(value); err != nil {
			return fmt.Errorf("%w: %s '%s'", ErrInvalidDeviceIdentifier, name, value)
		}
	}

	return nil
}

// SaveConfig saves the token and the device identity to the config file
// while preserving the original format and key order.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	updatePersistedFields(&node, cfg)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile string, cfg *Config, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("auth_token", cfg.AuthToken)
	viper.Set("device.session_id", cfg.Device.SessionID)
	viper.Set("device.device_id", cfg.Device.DeviceID)
	viper.Set("device.install_id", cfg.Device.InstallID)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updatePersistedFields updates auth_token and the device identifiers in the YAML node tree.
func updatePersistedFields(node *yaml.Node, cfg *Config) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	setScalarInMapping(mapNode, "auth_token", cfg.AuthToken, true)

	deviceNode := findOrAppendMapping(mapNode, "device")
	setScalarInMapping(deviceNode, "session_id", cfg.Device.SessionID, true)
	setScalarInMapping(deviceNode, "device_id", cfg.Device.DeviceID, true)
	setScalarInMapping(deviceNode, "install_id", cfg.Device.InstallID, true)
}

// setScalarInMapping updates the value of key in a mapping node, appending the
// key-value pair when it is not present yet.
func setScalarInMapping(mapNode *yaml.Node, key, value string, quoted bool) {
	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value != key {
			continue
		}

		// Update the value while preserving style.
		valueNode.Value = value
		valueNode.Tag = "!!str"

		// Ensure it's quoted if it has no explicit style yet.
		if quoted && valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}

		return
	}

	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valueNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}

	if quoted {
		valueNode.Style = yaml.DoubleQuotedStyle
	}

	mapNode.Content = append(mapNode.Content, keyNode, valueNode)
}

// findOrAppendMapping returns the mapping node stored under key,
// appending an empty mapping when the key is not present yet.
func findOrAppendMapping(mapNode *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key && mapNode.Content[i+1].Kind == yaml.MappingNode {
			return mapNode.Content[i+1]
		}
	}

	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valueNode := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	mapNode.Content = append(mapNode.Content, keyNode, valueNode)

	return valueNode
}
