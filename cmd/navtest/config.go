package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/jnav/pkg/jnav"
)

// Config is the navtest configuration file.
//
//	log_path = "logs/navtest.log"
//	log_level = "debug"
//	queue_capacity = 64
//	language = "zh"
//	start = "first"
//	metrics_addr = ":9090"
type Config struct {
	jnav.Options
	Language    string `toml:"language"`
	Start       string `toml:"start"`
	MetricsAddr string `toml:"metrics_addr"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Language: "en",
		Start:    firstDestination.Path(),
	}
}

// LoadConfig reads a TOML config file over the defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}
