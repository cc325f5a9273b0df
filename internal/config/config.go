// Package config loads the CLI configuration using Viper for flexible
// loading from files, environment variables and command-line flags.
//
// Values come from .aoc.yml (or the file named by --config or
// AOC_CONFIG_FILE), AOC_ prefixed environment variables such as
// AOC_INPUT_DIR and AOC_SOLVE_STRICT, and bound flags. Missing values fall
// back to the defaults below, and the result is validated before use.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults applied to values the user did not set.
const (
	DefaultInputDir     = "inputs"
	DefaultInputPattern = "day%02d.txt"
	DefaultFormat       = "text"
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "console"
	DefaultDebounce     = 300 * time.Millisecond

	// DefaultFile is the configuration file looked up in the working directory.
	DefaultFile = ".aoc.yml"

	// EnvPrefix prefixes every environment override, e.g. AOC_INPUT_DIR.
	EnvPrefix = "AOC"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

type Config struct {
	Input  InputConfig  `mapstructure:"input" yaml:"input"`
	Solve  SolveConfig  `mapstructure:"solve" yaml:"solve"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Watch  WatchConfig  `mapstructure:"watch" yaml:"watch"`
}

type InputConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir" validate:"required,safepath"`
	Pattern string `mapstructure:"pattern" yaml:"pattern" validate:"required,daypattern"`
}

type SolveConfig struct {
	// Strict stops a run at the first recoverable problem in the input.
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json yaml"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=console json"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce" validate:"min=0,max=1m"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir:     DefaultInputDir,
			Pattern: DefaultInputPattern,
		},
		Output: OutputConfig{Format: DefaultFormat},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Watch: WatchConfig{Debounce: DefaultDebounce},
	}
}

// Bind registers the defaults and the AOC_ environment overrides on v.
// Keys must be known to viper for Unmarshal to see their environment value.
func Bind(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("input.dir", defaults.Input.Dir)
	v.SetDefault("input.pattern", defaults.Input.Pattern)
	v.SetDefault("solve.strict", defaults.Solve.Strict)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v, applies defaults and validates it.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, perrors.WrapConfig(err, perrors.ErrCodeConfigInvalid, "cannot decode configuration")
	}

	applyDefaults(&config)

	if result := Validate(&config); result.HasErrors() {
		return nil, perrors.NewConfigError(perrors.ErrCodeConfigInvalid, "invalid configuration: "+result.Summary()).
			WithContext("fields", result.Fields())
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	defaults := Default()

	if config.Input.Dir == "" {
		config.Input.Dir = defaults.Input.Dir
	}
	if config.Input.Pattern == "" {
		config.Input.Pattern = defaults.Input.Pattern
	}
	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}
	if config.Log.Format == "" {
		config.Log.Format = defaults.Log.Format
	}
	if config.Watch.Debounce == 0 {
		config.Watch.Debounce = defaults.Watch.Debounce
	}
}

// InputPath returns the input file for day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.Input.Dir, fmt.Sprintf(c.Input.Pattern, day))
}

// WriteFile writes c as YAML to filename. An existing file is only replaced
// when overwrite is set.
func (c *Config) WriteFile(filename string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(filename); err == nil {
			return perrors.NewConfigError(perrors.ErrCodeConfigInvalid, "configuration file already exists").
				WithContext("path", filename)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	header := "# Advent of Code 2022 solver configuration\n"
	if err := os.WriteFile(filename, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}
