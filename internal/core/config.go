package core

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-friendly configuration surface consumed by NewFromConfig.
// Zero values fall back to the same defaults as the functional options.
type Config struct {
	// Driver is the database/sql driver name: sqlserver, mysql, postgres, sqlite3.
	Driver string `yaml:"driver"`
	// ConnectionString is the DSN passed to the handle provider.
	ConnectionString string `yaml:"connection_string"`
	// Schema overrides the dialect default for unqualified procedure names.
	Schema string `yaml:"schema"`
	// Environment names the deployment environment in log events.
	Environment string `yaml:"environment"`
	// User names the executing principal in log events.
	User string `yaml:"user"`
	// SuppressLogging disables all log output for the Service.
	SuppressLogging bool `yaml:"suppress_logging"`
	// SensitiveFields overrides the parameter names masked in logs.
	SensitiveFields []string `yaml:"sensitive_fields"`
	// DefaultStringSize overrides the size assigned to string-like parameters
	// added without an explicit size.
	DefaultStringSize int `yaml:"default_string_size"`
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(err, "reading config "+path)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration bytes.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, WrapError(err, "parsing config")
	}
	if cfg.Driver == "" {
		return nil, errors.New("config: driver is required")
	}
	if cfg.ConnectionString == "" {
		return nil, errors.New("config: connection_string is required")
	}
	return &cfg, nil
}

// Options renders the configuration as functional options.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Schema != "" {
		opts = append(opts, WithSchema(c.Schema))
	}
	if c.Environment != "" {
		opts = append(opts, WithEnvironment(c.Environment))
	}
	if c.User != "" {
		opts = append(opts, WithUser(c.User))
	}
	if c.SuppressLogging {
		opts = append(opts, WithSuppressLogging(true))
	}
	if len(c.SensitiveFields) > 0 {
		opts = append(opts, WithSensitiveFields(c.SensitiveFields))
	}
	if c.DefaultStringSize > 0 {
		opts = append(opts, WithDefaultStringSize(c.DefaultStringSize))
	}
	return opts
}

// NewFromConfig creates a Service from a parsed configuration, with extra
// options applied after the configuration's own.
func NewFromConfig(cfg *Config, extra ...Option) *Service {
	opts := append(cfg.Options(), extra...)
	return New(cfg.Driver, cfg.ConnectionString, opts...)
}
