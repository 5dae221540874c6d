// Package config loads environment configuration for the validator.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Configuration holds the environment-driven settings. The validation
// directories and track come from CLI flags, not from here.
type Configuration struct {
	// Env selects the runtime environment; "dev" switches logging to the
	// human-readable console writer.
	Env string `env:"ENV" env-default:""`
	// LogLevel is the zerolog level name.
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	// SchedulePath optionally points at a YAML schedule override. The
	// --schedule flag takes precedence when both are set.
	SchedulePath string `env:"SCHEDULE_PATH" env-default:""`
}

// Load reads the configuration from the environment.
func Load() (*Configuration, error) {
	var cfg Configuration
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}
