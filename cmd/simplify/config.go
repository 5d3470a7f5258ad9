package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Config holds the settings shared by the subcommands. Values come from the
// defaults, then the --config file, then flags given on the command line.
type Config struct {
	Threshold    float64 `toml:"threshold"`
	Connectivity int     `toml:"connectivity"`
	Scale        float64 `toml:"scale"`
	MinLabel     int     `toml:"min_label"`
	MaxLabel     int     `toml:"max_label"`
}

func DefaultConfig() Config {
	return Config{
		Threshold:    0,
		Connectivity: 8,
		Scale:        10,
		MinLabel:     1,
		MaxLabel:     0,
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path gives the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	return cfg, nil
}

// Copy the values of flags that were set explicitly from the flag-bound config
// into cfg.
func (cfg *Config) mergeFlags(flags *pflag.FlagSet, from Config) {
	if flags.Changed("threshold") {
		cfg.Threshold = from.Threshold
	}
	if flags.Changed("connectivity") {
		cfg.Connectivity = from.Connectivity
	}
	if flags.Changed("scale") {
		cfg.Scale = from.Scale
	}
	if flags.Changed("min-label") {
		cfg.MinLabel = from.MinLabel
	}
	if flags.Changed("max-label") {
		cfg.MaxLabel = from.MaxLabel
	}
}
