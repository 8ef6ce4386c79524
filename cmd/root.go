// Package cmd provides the command-line interface for bintree.
//
// Configuration System:
//
//	The CLI reads configuration from several sources with clear precedence:
//	1. Command-line flags (--config, --log-level, --output) - highest priority
//	2. BINTREE_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (BINTREE_TREE_VALUES, etc.)
//	4. Configuration file (.bintree.yml) - lowest priority
//
// Environment Variables:
//
//	BINTREE_CONFIG_FILE: Path to custom configuration file
//	BINTREE_TREE_VALUES: Comma separated insertion order, e.g. "4,2,6"
//	BINTREE_OUTPUT_FORMAT: Default output format (text, tree, json, yaml)
//	BINTREE_LOG_LEVEL is read through the --log-level flag binding
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/bintree/internal/config"
)

var (
	cfgFile string
	noColor bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bintree",
	Short: "Walk through an unbalanced binary search tree of integers",
	Long: `bintree builds binary search trees of integers and shows what insert,
find, remove and in-order traversal do to them.

Quick Start:
  bintree demo                     Replay the classic insert/find/remove walkthrough
  bintree show 8 3 10 1 -o tree    Draw the tree built from the given values
  bintree run ops.yml              Apply an operation script
  bintree run ops.yml --watch      Re-apply the script on every save

Values are inserted in the order given. Equal values are stored in the
right subtree, and no rebalancing is ever performed.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .bintree.yml, can also use BINTREE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag
//  2. BINTREE_CONFIG_FILE environment variable
//  3. .bintree.yml in the current directory
//
// Every configuration key can also be overridden through a BINTREE_ prefixed
// environment variable, with dots replaced by underscores.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("BINTREE_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bintree")
	}

	viper.SetEnvPrefix("BINTREE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// A missing or unreadable file falls back to defaults
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig loads the configuration and applies process-wide output settings
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if noColor || !cfg.Output.Color {
		pterm.DisableColor()
	} else {
		pterm.EnableColor()
	}

	return cfg, nil
}
