package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, read from the environment.
type Config struct {
	Addr    string `env:"TOOLBOX_ADDR" envDefault:":8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`
	// Verbose enables per-request access logs.
	Verbose bool `env:"TOOLBOX_VERBOSE" envDefault:"true"`

	// SessionTTL is how long a session may stay idle before the janitor drops it.
	SessionTTL      time.Duration `env:"TOOLBOX_SESSION_TTL" envDefault:"1h"`
	JanitorInterval time.Duration `env:"TOOLBOX_JANITOR_INTERVAL" envDefault:"10m"`

	DefaultGroupSize int   `env:"TOOLBOX_DEFAULT_GROUP_SIZE" envDefault:"3"`
	MaxUploadBytes   int64 `env:"TOOLBOX_MAX_UPLOAD_BYTES" envDefault:"1048576"`

	// GeminiAPIKey enables AI team naming when set.
	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	GeminiModel    string        `env:"GEMINI_MODEL" envDefault:"gemini-3-flash-preview"`
	NamingTimeout  time.Duration `env:"TOOLBOX_NAMING_TIMEOUT" envDefault:"30s"`
	NamingLanguage string        `env:"TOOLBOX_NAMING_LANGUAGE" envDefault:"Traditional Chinese (Taiwan)"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that env tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE %q must be debug, release or test", c.GinMode))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("TOOLBOX_SESSION_TTL must be positive"))
	}
	if c.JanitorInterval <= 0 {
		errs = append(errs, errors.New("TOOLBOX_JANITOR_INTERVAL must be positive"))
	}
	if c.DefaultGroupSize < 1 {
		errs = append(errs, errors.New("TOOLBOX_DEFAULT_GROUP_SIZE must be at least 1"))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("TOOLBOX_MAX_UPLOAD_BYTES must be positive"))
	}
	if c.NamingTimeout <= 0 {
		errs = append(errs, errors.New("TOOLBOX_NAMING_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

// NamingEnabled reports whether an AI naming backend can be built.
func (c *Config) NamingEnabled() bool {
	return c.GeminiAPIKey != ""
}
