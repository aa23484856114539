// Package config holds apiprobe's flat run configuration: a plain
// struct with JSON tags and an explicit-default constructor, mirroring
// pkg/ffuf.Config/NewConfig. Values are populated from cobra flags in
// cmd/apiprobe and, when --config names a .toml file, from
// LoadTOMLOverrides. Values viper reads from a YAML config file or the
// environment are not copied into Config.
package config

import "context"

// Config is every option a single apiprobe run needs, independent of
// how those values were sourced (flag or TOML config file).
type Config struct {
	Context context.Context    `json:"-"`
	Cancel  context.CancelFunc `json:"-"`

	// Spec input.
	SpecPath string `json:"spec_path"`

	// Target override: when set, replaces the base URL the normalizer
	// derived from the document's declared servers/host.
	TargetOverride string `json:"target_override"`

	// Which vulnerability classes to run. Empty means "all".
	Checks []string `json:"checks"`

	// Execution.
	Threads        int    `json:"threads"`
	Timeout        int    `json:"timeout_seconds"`
	Rate           int64  `json:"rate"`
	ProxyURL       string `json:"proxy_url"`
	FollowRedirect bool   `json:"follow_redirects"`
	Insecure       bool   `json:"insecure"`

	// Default headers threaded into every request, and the two the
	// missing-authentication check knows to strip.
	Headers map[string]string `json:"headers"`

	// Output.
	OutputFile   string `json:"output_file"`
	OutputFormat string `json:"output_format"` // json, text
	Quiet        bool   `json:"quiet"`
	Verbose      bool   `json:"verbose"`

	// Default success codes per check, keyed by check name; a check
	// with no entry here falls back to its own built-in default.
	SuccessCodes map[string][]int `json:"success_codes"`
}

// NewConfig returns a Config with the same explicit-default-per-field
// style as ffuf.NewConfig.
func NewConfig(ctx context.Context, cancel context.CancelFunc) Config {
	var c Config
	c.Context = ctx
	c.Cancel = cancel
	c.SpecPath = ""
	c.TargetOverride = ""
	c.Checks = []string{}
	c.Threads = 10
	c.Timeout = 10
	c.Rate = 0
	c.ProxyURL = ""
	c.FollowRedirect = false
	c.Insecure = false
	c.Headers = make(map[string]string)
	c.OutputFile = ""
	c.OutputFormat = "json"
	c.Quiet = false
	c.Verbose = false
	c.SuccessCodes = make(map[string][]int)
	return c
}

func (c *Config) SetContext(ctx context.Context, cancel context.CancelFunc) {
	c.Context = ctx
	c.Cancel = cancel
}
