// Package config holds viper-backed configuration for the balance CLI,
// grounded on RedClaus-cortex/core/internal/config.Config's
// mapstructure/yaml-tagged struct plus viper.Unmarshal pattern, trimmed to
// the handful of settings this tool actually needs.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// OutputFormat selects how a solved search is rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatDOT  OutputFormat = "dot"
	FormatSVG  OutputFormat = "svg"
)

// Config holds every setting the balance CLI needs to run one search.
type Config struct {
	// Coins is the number of coins in the MAJORITY instance. Must be odd.
	Coins int `mapstructure:"coins" yaml:"coins"`
	// StopDepth bounds how deep improve_node is allowed to search before
	// giving up and reporting the root unresolved.
	StopDepth int `mapstructure:"stop_depth" yaml:"stop_depth"`
	// Output is the file path to write the report to, or "-" for stdout.
	Output string `mapstructure:"output" yaml:"output"`
	// Format selects the report renderer.
	Format OutputFormat `mapstructure:"format" yaml:"format"`
	// HappyPath restricts the report to a single optimal subtree per node.
	HappyPath bool `mapstructure:"happy_path" yaml:"happy_path"`
	// Verbose raises the logger to Debug level.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Coins:     11,
		StopDepth: 16,
		Output:    "-",
		Format:    FormatText,
		HappyPath: false,
		Verbose:   false,
	}
}

// Load reads configuration from v, which the caller has already pointed at
// a config file (if any) and bound to command-line flags. Environment
// variables prefixed BALANCE_ take precedence over the config file, and
// flags bound with viper.BindPFlag take precedence over both.
func Load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("BALANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Registering every field's default makes it a known key to viper, so
	// AutomaticEnv and AllSettings (which Unmarshal reads from) actually
	// see an env override for it; AutomaticEnv alone only affects Get.
	defaults := Default()
	v.SetDefault("coins", defaults.Coins)
	v.SetDefault("stop_depth", defaults.StopDepth)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("format", string(defaults.Format))
	v.SetDefault("happy_path", defaults.HappyPath)
	v.SetDefault("verbose", defaults.Verbose)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the engine cannot act on.
func (c *Config) Validate() error {
	if c.Coins <= 0 || c.Coins%2 == 0 {
		return fmt.Errorf("config: coins must be a positive odd number, got %d", c.Coins)
	}
	if c.StopDepth <= 0 || c.StopDepth > 255 {
		return fmt.Errorf("config: stop_depth must be between 1 and 255, got %d", c.StopDepth)
	}
	switch c.Format {
	case FormatText, FormatDOT, FormatSVG:
	default:
		return fmt.Errorf("config: unknown format %q, must be one of text, dot, svg", c.Format)
	}
	return nil
}
