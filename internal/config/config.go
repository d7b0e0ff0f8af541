// Package config loads the attriscan TOML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the file-backed tool configuration. A missing file yields
// Default(); a present file overrides only the keys it sets.
type Config struct {
	Inspector  Inspector  `toml:"inspector"`
	Output     Output     `toml:"output"`
	Copyrights Copyrights `toml:"copyrights"`
	LogLevel   string     `toml:"log_level"`
}

// Inspector configures the external license inspector invocation.
type Inspector struct {
	Command    string   `toml:"command"`
	Args       []string `toml:"args"`
	TimeoutSec int      `toml:"timeout_sec"`
}

// Output configures where reports and snapshots land.
type Output struct {
	Dir string `toml:"dir"`
}

// Copyrights carries the copyright-garbage list: statements flagged as
// non-attributive noise, removed by exact match during processing.
type Copyrights struct {
	Garbage []string `toml:"garbage"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Inspector: Inspector{
			Command:    "license-inspector",
			Args:       []string{"inspect", "--json"},
			TimeoutSec: 600,
		},
		Output:   Output{Dir: "attriscan_out"},
		LogLevel: "info",
	}
}

// Load reads the TOML file at path. Path may be empty or point at a missing
// file, in which case defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
