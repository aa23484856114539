package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

// fileOverrides is the subset of Config a TOML file may supply,
// mirroring ffuf's config-file convention of layering a file on top of
// constructor defaults before flags are applied.
type fileOverrides struct {
	Threads      int               `toml:"threads"`
	Timeout      int               `toml:"timeout_seconds"`
	Headers      map[string]string `toml:"headers"`
	SuccessCodes map[string][]int  `toml:"success_codes"`
	OutputFormat string            `toml:"output_format"`
}

// LoadTOMLOverrides reads a TOML config file and layers its values
// onto c, leaving fields the file doesn't mention untouched.
func LoadTOMLOverrides(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var overrides fileOverrides
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return err
	}

	if overrides.Threads != 0 {
		c.Threads = overrides.Threads
	}
	if overrides.Timeout != 0 {
		c.Timeout = overrides.Timeout
	}
	if overrides.OutputFormat != "" {
		c.OutputFormat = overrides.OutputFormat
	}
	for k, v := range overrides.Headers {
		c.Headers[k] = v
	}
	for k, v := range overrides.SuccessCodes {
		c.SuccessCodes[k] = v
	}
	return nil
}
