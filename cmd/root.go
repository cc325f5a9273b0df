package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/conneroisu/aoc2022/internal/config"
	"github.com/conneroisu/aoc2022/internal/logging"
	"github.com/conneroisu/aoc2022/internal/puzzles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// registry holds every puzzle the CLI can solve.
var registry = puzzles.Default()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2022 puzzle solver",
	Long: `aoc solves Advent of Code 2022 puzzles from their text inputs.

Inputs are read from the input directory (default ./inputs) using the
pattern day%02d.txt unless --input names another file or "-" for stdin.
Problems in the input that do not prevent an answer, such as a rucksack
group without a common item, are reported on stderr. Use --strict to
fail on the first one instead.

Quick Start:
  aoc init                  Write a default .aoc.yml
  aoc solve 3               Solve both parts of day 3
  aoc solve 3 2 -i -        Solve day 3 part 2 from stdin
  aoc list                  List solvable puzzles
  aoc watch 3 2             Solve again whenever the input changes

Command Aliases:
  solve (s), list (l), watch (w)`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .aoc.yml, can also use AOC_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "log format (console, json)")

	AddFlagValidation(rootCmd.PersistentFlags(), "log-level", func(level string) error {
		_, err := logging.ParseLevel(level)
		return err
	})
}

// initConfig initializes the configuration system.
//
// Configuration file priority (highest to lowest):
//  1. --config flag
//  2. AOC_CONFIG_FILE environment variable
//  3. .aoc.yml in the current directory
//
// Every key can also be set through the environment, e.g. AOC_INPUT_DIR.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("AOC_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".aoc")
	}

	config.Bind(viper.GetViper())
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// loadConfig reads the configuration file and loads the configuration. A
// missing .aoc.yml is fine; a file named by --config or AOC_CONFIG_FILE
// must be readable.
func loadConfig() (*config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		}
	}
	return config.Load()
}

// newLogger builds the CLI logger. Verbose forces debug output and quiet
// keeps only errors.
func newLogger(cfg *config.Config, w io.Writer, verbose, quiet bool) (*logging.PuzzleLogger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	switch {
	case verbose:
		level = logging.LevelDebug
	case quiet:
		level = logging.LevelError
	}

	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    cfg.Log.Format,
		Output:    w,
		Component: "cli",
	}), nil
}
