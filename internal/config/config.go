// Package config provides configuration management for bintree using Viper
// for flexible loading from files, environment variables, and command-line
// flags.
//
// The configuration supports YAML files, environment variable overrides with
// the BINTREE_ prefix, and validation. It holds the demonstration values,
// output format, logging options and the script watcher's debounce delay.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/bintree/internal/logging"
	"github.com/conneroisu/bintree/internal/render"
)

type Config struct {
	Tree   TreeConfig   `yaml:"tree"`
	Demo   DemoConfig   `yaml:"demo"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Watch  WatchConfig  `yaml:"watch"`
}

// TreeConfig lists the values inserted, in order, when a command builds its tree
type TreeConfig struct {
	Values []int `yaml:"values"`
}

// DemoConfig drives the demo command's lookups and removals
type DemoConfig struct {
	Find   []int `yaml:"find"`
	Remove []int `yaml:"remove"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Defaults reproduce the classic seven-value walkthrough.
var (
	DefaultValues   = []int{4, 2, 6, 1, 3, 5, 7}
	DefaultFind     = []int{5, 8}
	DefaultRemove   = []int{2}
	DefaultDebounce = 200 * time.Millisecond
)

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Handle int slices set via viper (workaround for viper slice handling)
	var err error
	if config.Tree.Values, err = intSlice("tree.values", config.Tree.Values, DefaultValues); err != nil {
		return nil, fmt.Errorf("invalid configuration: tree config: %w", err)
	}
	if config.Demo.Find, err = intSlice("demo.find", config.Demo.Find, DefaultFind); err != nil {
		return nil, fmt.Errorf("invalid configuration: demo config: %w", err)
	}
	if config.Demo.Remove, err = intSlice("demo.remove", config.Demo.Remove, DefaultRemove); err != nil {
		return nil, fmt.Errorf("invalid configuration: demo config: %w", err)
	}

	if viper.IsSet("output.format") {
		config.Output.Format = viper.GetString("output.format")
	}
	if config.Output.Format == "" {
		config.Output.Format = render.FormatText
	}
	if viper.IsSet("output.color") {
		config.Output.Color = viper.GetBool("output.color")
	} else {
		config.Output.Color = true
	}

	if viper.IsSet("log-level") {
		config.Log.Level = viper.GetString("log-level")
	}
	if config.Log.Level == "" {
		config.Log.Level = "warn"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	if viper.IsSet("watch.debounce") {
		config.Watch.Debounce = viper.GetDuration("watch.debounce")
	}
	if config.Watch.Debounce == 0 {
		config.Watch.Debounce = DefaultDebounce
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// intSlice prefers an explicitly set viper key, which may arrive as a
// comma-separated env string, over the unmarshalled value. Every field of
// such a string must be an integer.
func intSlice(key string, current, fallback []int) ([]int, error) {
	if viper.IsSet(key) {
		if raw, ok := viper.Get(key).(string); ok {
			var parsed []int
			for _, field := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
				v, err := strconv.Atoi(field)
				if err != nil {
					return nil, fmt.Errorf("%s: invalid value %q: must be an integer", key, field)
				}
				parsed = append(parsed, v)
			}
			if len(parsed) > 0 {
				return parsed, nil
			}
		} else if values := viper.GetIntSlice(key); len(values) > 0 {
			return values, nil
		}
	}
	if len(current) > 0 {
		return current, nil
	}
	return append([]int(nil), fallback...), nil
}

// validateConfig validates configuration values for correctness
func validateConfig(config *Config) error {
	if err := validateOutputConfig(&config.Output); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config: %w", err)
	}

	if config.Watch.Debounce < 0 {
		return fmt.Errorf("watch config: debounce %s must not be negative", config.Watch.Debounce)
	}

	return nil
}

func validateOutputConfig(config *OutputConfig) error {
	if !render.IsFormat(config.Format) {
		return fmt.Errorf("format %q is not one of: %s", config.Format, strings.Join(render.Formats(), ", "))
	}
	return nil
}

func validateLogConfig(config *LogConfig) error {
	if _, err := logging.ParseLevel(config.Level); err != nil {
		return err
	}
	if config.Format != "text" && config.Format != "json" {
		return fmt.Errorf("log format %q is not one of: text, json", config.Format)
	}
	return nil
}

// Logger builds the logger described by the log section
func (c *Config) Logger() logging.Logger {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		level = logging.LevelWarn
	}
	loggerConfig := logging.DefaultConfig()
	loggerConfig.Level = level
	loggerConfig.Format = c.Log.Format
	return logging.NewLogger(loggerConfig)
}
