package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, cfg.Tree.Values)
	assert.Equal(t, []int{5, 8}, cfg.Demo.Find)
	assert.Equal(t, []int{2}, cfg.Demo.Remove)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoadDefaultsAreCopies(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Tree.Values[0] = 99

	assert.Equal(t, 4, DefaultValues[0])
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func()
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "custom values",
			setup: func() {
				viper.Set("tree.values", []int{9, 3, 12})
				viper.Set("demo.find", []int{3})
				viper.Set("demo.remove", []int{9, 12})
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []int{9, 3, 12}, cfg.Tree.Values)
				assert.Equal(t, []int{3}, cfg.Demo.Find)
				assert.Equal(t, []int{9, 12}, cfg.Demo.Remove)
			},
		},
		{
			name: "comma separated values from env",
			setup: func() {
				viper.Set("tree.values", "8,1,5")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []int{8, 1, 5}, cfg.Tree.Values)
			},
		},
		{
			name: "output and log overrides",
			setup: func() {
				viper.Set("output.format", "yaml")
				viper.Set("output.color", false)
				viper.Set("log-level", "debug")
				viper.Set("log.format", "json")
				viper.Set("watch.debounce", "500ms")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "yaml", cfg.Output.Format)
				assert.False(t, cfg.Output.Color)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "json", cfg.Log.Format)
				assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
				assert.NotNil(t, cfg.Logger())
			},
		},
		{
			name: "unknown output format",
			setup: func() {
				viper.Set("output.format", "xml")
			},
			expectError: true,
		},
		{
			name: "unknown log level",
			setup: func() {
				viper.Set("log-level", "chatty")
			},
			expectError: true,
		},
		{
			name: "unknown log format",
			setup: func() {
				viper.Set("log.format", "logfmt")
			},
			expectError: true,
		},
		{
			name: "negative debounce",
			setup: func() {
				viper.Set("watch.debounce", "-1s")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			tt.setup()

			cfg, err := Load()
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadIntSlicesFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected []int
		errMsg   string
	}{
		{name: "comma separated", env: "4,2,6", expected: []int{4, 2, 6}},
		{name: "spaces and negatives", env: "-3, 5 7", expected: []int{-3, 5, 7}},
		{name: "non integer field", env: "4,x,6", errMsg: `tree.values: invalid value "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			viper.SetEnvPrefix("BINTREE")
			viper.AutomaticEnv()
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
			t.Setenv("BINTREE_TREE_VALUES", tt.env)

			cfg, err := Load()
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Tree.Values)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), ".bintree.yml")
	content := `tree:
  values: [10, 5, 15]
demo:
  find: [15]
  remove: [10]
output:
  format: tree
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 5, 15}, cfg.Tree.Values)
	assert.Equal(t, []int{15}, cfg.Demo.Find)
	assert.Equal(t, []int{10}, cfg.Demo.Remove)
	assert.Equal(t, "tree", cfg.Output.Format)
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{
		Output: OutputConfig{Format: "json"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
	assert.NoError(t, validateConfig(valid))

	invalid := *valid
	invalid.Output.Format = ""
	err := validateConfig(&invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output config")
}
