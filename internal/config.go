package internal

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultPort is the HTTP port used when nothing else configures one.
const DefaultPort = 3000

// PortEnvVar is the single environment variable the server recognizes.
// It overrides the config file; unset or invalid values are ignored.
const PortEnvVar = "PORT"

// Config represents the application configuration.
type Config struct {
	App ApplicationConfig `yaml:"app"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return c.App.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// ApplyEnv overrides the port from PORT. An unset, non-numeric, or
// out-of-range value leaves the configured port untouched.
func (c *HTTPConfig) ApplyEnv() {
	raw, ok := os.LookupEnv(PortEnvVar)
	if !ok || raw == "" {
		return
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		slog.Warn("ignoring invalid PORT value",
			slog.String("value", raw),
			slog.Int("port", c.Port))
		return
	}
	c.Port = port
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: DefaultPort,
			},
		},
	}
}
