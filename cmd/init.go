package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conneroisu/aoc2022/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default configuration file",
	Long: `Write .aoc.yml with the default settings and create the input
directory. If no directory is given, the current directory is used.

Examples:
  aoc init                # .aoc.yml and inputs/ here
  aoc init ~/aoc          # In another directory
  aoc init --force        # Replace an existing .aoc.yml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg := config.Default()
	if err := os.MkdirAll(filepath.Join(dir, cfg.Input.Dir), 0o755); err != nil {
		return fmt.Errorf("failed to create input directory: %w", err)
	}

	path := filepath.Join(dir, config.DefaultFile)
	if err := cfg.WriteFile(path, initForce); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Save puzzle inputs as %s\n", filepath.Join(dir, cfg.InputPath(1)))
	return nil
}
