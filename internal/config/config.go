// ABOUTME: Configuration loader for the crudadmin CLI and TUI
// ABOUTME: Loads settings from an optional .env file and environment variables with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultAPIURL         = "http://localhost:5000"
	DefaultRequestTimeout = 30 * time.Second
	appDirName            = "crudadmin"
)

// Config holds everything the client side needs to talk to the users service
type Config struct {
	APIURL         string
	ConfigDir      string
	RequestTimeout time.Duration // 0 means transport default
	LogLevel       string
	LogFormat      string
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables that are already set, then builds the Config.
// An empty envFile skips the .env step.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		APIURL:         strings.TrimRight(ensureScheme(getEnv("CRUDADMIN_API_URL", DefaultAPIURL)), "/"),
		ConfigDir:      getEnv("CRUDADMIN_CONFIG_DIR", DefaultConfigDir()),
		RequestTimeout: getEnvDuration("CRUDADMIN_REQUEST_TIMEOUT", DefaultRequestTimeout),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the API URL is usable and the timeout is sane
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid API URL %q", c.APIURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API URL must use http or https, got %q", u.Scheme)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}

// Override applies command-line values on top of the loaded config.
// Empty values keep what was loaded.
func (c *Config) Override(apiURL, configDir string) error {
	if apiURL != "" {
		c.APIURL = strings.TrimRight(ensureScheme(apiURL), "/")
	}
	if configDir != "" {
		c.ConfigDir = configDir
	}
	return c.Validate()
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appDirName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("15s") or plain seconds ("15")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// ensureScheme adds http:// prefix if the URL has no scheme
func ensureScheme(raw string) string {
	if raw == "" {
		return raw
	}
	if !strings.Contains(raw, "://") {
		return "http://" + raw
	}
	return raw
}
