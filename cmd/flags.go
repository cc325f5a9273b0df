package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/conneroisu/aoc2022/internal/config"
	"github.com/conneroisu/aoc2022/internal/puzzle"
	"github.com/conneroisu/aoc2022/internal/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	// Input flags
	Input string `flag:"input,i" desc:"Input file, - for stdin" default:""`

	// Solve flags
	Strict bool `flag:"strict" desc:"Fail on the first problem in the input" default:"false"`

	// Output flags
	OutputFormat string `flag:"output,o" desc:"Output format" default:""`
	Verbose      bool   `flag:"verbose,v" desc:"Enable verbose output" default:"false"`
	Quiet        bool   `flag:"quiet,q" desc:"Suppress diagnostics" default:"false"`
}

// AddStandardFlags adds standard flags to a command
func AddStandardFlags(cmd *cobra.Command, flagTypes ...string) *StandardFlags {
	flags := &StandardFlags{}

	for _, flagType := range flagTypes {
		switch flagType {
		case "input":
			addInputFlags(cmd, flags)
		case "solve":
			addSolveFlags(cmd, flags)
		case "output":
			addOutputFlags(cmd, flags)
		}
	}

	return flags
}

func addInputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Input file, - for stdin (default from input.dir and input.pattern)")
}

func addSolveFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "Fail on the first problem in the input instead of reporting it")
}

func addOutputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", "", "Output format (text|json|yaml), default from output.format")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress diagnostics")

	AddFlagValidation(cmd.Flags(), "output", func(format string) error {
		return ValidateFormat(format, puzzle.Formats)
	})
}

// ValidateFlags validates flag combinations and values
func (f *StandardFlags) ValidateFlags() error {
	if f.OutputFormat != "" {
		if err := ValidateFormat(f.OutputFormat, puzzle.Formats); err != nil {
			return err
		}
	}

	if f.Input != "" {
		if err := validation.ValidateInputPath(f.Input); err != nil {
			return err
		}
	}

	// Quiet and verbose are mutually exclusive
	if f.Quiet && f.Verbose {
		return fmt.Errorf("cannot specify both --quiet and --verbose")
	}

	return nil
}

// Apply merges the flags over the loaded configuration. Only flags given
// on the command line override configured values.
func (f *StandardFlags) Apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("strict") {
		cfg.Solve.Strict = f.Strict
	}
	if f.OutputFormat != "" {
		cfg.Output.Format = strings.ToLower(f.OutputFormat)
	}
}

// InputFor returns the input to read for day.
func (f *StandardFlags) InputFor(cfg *config.Config, day int) string {
	if f.Input != "" {
		return f.Input
	}
	return cfg.InputPath(day)
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(flags *pflag.FlagSet, flagName string, validator func(string) error) {
	flag := flags.Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

// ValidateFormat checks format against the supported formats. An empty
// format means the configured default.
func ValidateFormat(format string, valid []string) error {
	if format == "" {
		return nil
	}
	for _, v := range valid {
		if strings.EqualFold(format, v) {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %s, must be one of: %s", format, strings.Join(valid, ", "))
}

// parseDayPart reads the <day> [part] arguments. Part 0 means every part.
func parseDayPart(args []string) (day, part int, err error) {
	if len(args) == 0 || len(args) > 2 {
		return 0, 0, fmt.Errorf("expected <day> [part], got %d arguments", len(args))
	}

	day, err = strconv.Atoi(strings.TrimPrefix(strings.ToLower(args[0]), "day"))
	if err != nil || day < 1 || day > 25 {
		return 0, 0, fmt.Errorf("invalid day %q: must be a number between 1 and 25", args[0])
	}

	if len(args) == 2 {
		part, err = strconv.Atoi(strings.TrimPrefix(strings.ToLower(args[1]), "part"))
		if err != nil || part < 1 || part > 2 {
			return 0, 0, fmt.Errorf("invalid part %q: must be 1 or 2", args[1])
		}
	}

	return day, part, nil
}

// dayPartArgs validates the positional arguments before RunE.
func dayPartArgs(_ *cobra.Command, args []string) error {
	_, _, err := parseDayPart(args)
	return err
}
