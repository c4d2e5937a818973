// Package config provides client configuration for the SDK. Configuration is
// read from a YAML file with optional overrides from the environment (a
// .env file is honored when present). A loaded Config satisfies the
// transport.Configurator interface and can be handed directly to a client.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lumeniq/adminsdk/pkg/transport"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// Environment variables that override file values when set.
const (
	EnvServerURL = "ADMINSDK_SERVER_URL"
	EnvAPIKey    = "ADMINSDK_API_KEY"
)

const defaultTimeout = 30 * time.Second

// Config represents the configuration for an SDK client.
// It contains server connection details and authentication information.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// ServerURL is the URL and port of the administration API server
	ServerURL string `yaml:"server_url"`
	// APIKey is the fallback authentication token for requests without a session
	APIKey string `yaml:"api_key"`
	// TimeoutSeconds bounds each HTTP request; zero means the default
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

var _ transport.Configurator = &Config{}

// GetServerURL returns the configured server URL.
func (c *Config) GetServerURL() string {
	return c.ServerURL
}

// GetAPIKey returns the configured fallback API key.
func (c *Config) GetAPIKey() string {
	return c.APIKey
}

// GetTimeout returns the per-request timeout.
func (c *Config) GetTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetDefaultConfigPath returns the default path for the config file.
// It uses the OS-specific config directory (e.g., ~/.config/adminsdk on Linux).
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "adminsdk", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the specified file.
// If no file is specified, it uses the default config location.
// Environment variables override file values.
func LoadConfig(file string) (*Config, error) {
	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	yamlStr, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	var c Config
	if err = yaml.Unmarshal(yamlStr, &c); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	applyEnvOverrides(&c)

	if c.ServerURL == "" {
		return nil, errors.New("server_url is required")
	}

	return &c, nil
}

// applyEnvOverrides overlays environment values onto the config. A .env file
// in the working directory is loaded first when present.
func applyEnvOverrides(c *Config) {
	godotenv.Load()

	if v := os.Getenv(EnvServerURL); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
}

// WriteConfig writes the configuration to the specified file.
func (c *Config) WriteConfig(file string) error {
	if file == "" {
		return errors.New("file path cannot be empty")
	}

	err := os.MkdirAll(filepath.Dir(file), os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("unable to serialize config: %w", err)
	}

	if err := os.WriteFile(file, data, 0o600); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}
	return nil
}
