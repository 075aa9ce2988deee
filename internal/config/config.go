// Package config defines process configuration and its loading.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env on top.
// - Functions accept context.Context as the first parameter.
// - Errors are wrapped with this package's sentinels.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// InitialCapacity is the starting capacity of the score store.
	InitialCapacity int `koanf:"initial_capacity"`

	// DataFile is the file name offered by save and load.
	DataFile string `koanf:"data_file"`

	// MetricsFile, when set, receives the Prometheus text exposition on exit.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config holding the defaults. Context is accepted first to
// satisfy the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "warn",
		InitialCapacity: 10,
		DataFile:        "notas.txt",
		MetricsFile:     "",
	}
}
