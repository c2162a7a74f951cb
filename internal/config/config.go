// Package config loads the optional TOML configuration for the pokerstats
// CLI. Every field has a compiled-in default; a config file only overrides
// what it mentions.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config mirrors an optional pokerstats.toml file.
type Config struct {
	// Logs is the default log directory used when the flag is not given.
	Logs string `toml:"logs"`
	// Sort is the default table sort column.
	Sort       string     `toml:"sort"`
	Thresholds Thresholds `toml:"thresholds"`
}

// Band is a low/high threshold pair for one color band.
type Band struct {
	Low  float64 `toml:"low"`
	High float64 `toml:"high"`
}

// Thresholds configures the display color bands per metric group.
type Thresholds struct {
	Hands       Band `toml:"hands"`
	Aggression  Band `toml:"aggression"`
	ShowdownWin Band `toml:"showdown_win"`
	Tightness   Band `toml:"tightness"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Logs: "logs",
		Sort: "Tightness Score",
		Thresholds: Thresholds{
			Hands:       Band{Low: 50, High: 200},
			Aggression:  Band{Low: 15, High: 30},
			ShowdownWin: Band{Low: 40, High: 60},
			Tightness:   Band{Low: 30, High: 70},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
