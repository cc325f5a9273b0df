package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/conneroisu/aoc2022/internal/config"
	"github.com/conneroisu/aoc2022/internal/logging"
	"github.com/conneroisu/aoc2022/internal/puzzle"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:     "solve <day> [part]",
	Aliases: []string{"s"},
	Short:   "Solve a puzzle",
	Long: `Solve one part of a day, or every registered part when part is omitted.

The answer is printed on stdout. Problems found in the input that still
allow an answer are printed on stderr unless --quiet is given.

Examples:
  aoc solve 3                 # Both parts of day 3 from inputs/day03.txt
  aoc solve 3 2               # Only day 3 part 2
  aoc solve 3 2 -i my.txt     # Read another input file
  cat in.txt | aoc s 3 2 -i - # Read stdin
  aoc solve 1 -o json         # JSON reports
  aoc solve 3 2 --strict      # Fail on the first incomplete group`,
	Args: dayPartArgs,
	RunE: runSolve,
}

var solveFlags *StandardFlags

func init() {
	rootCmd.AddCommand(solveCmd)

	solveFlags = AddStandardFlags(solveCmd, "input", "solve", "output")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if err := solveFlags.ValidateFlags(); err != nil {
		return err
	}

	day, part, err := parseDayPart(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	solveFlags.Apply(cmd, cfg)

	logger, err := newLogger(cfg, cmd.ErrOrStderr(), solveFlags.Verbose, solveFlags.Quiet)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	session := &solveSession{
		runner: puzzle.NewRunner(registry, logger),
		logger: logger,
		cfg:    cfg,
		input:  solveFlags.InputFor(cfg, day),
		quiet:  solveFlags.Quiet,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}

	return session.Solve(cmd.Context(), day, part)
}

// solveSession runs the parts of one day against one input and prints the
// reports. It is shared by solve and watch.
type solveSession struct {
	runner *puzzle.Runner
	logger logging.Logger
	cfg    *config.Config
	input  string
	quiet  bool
	out    io.Writer
	errOut io.Writer
}

// Solve runs part of day, or every registered part when part is 0.
func (s *solveSession) Solve(ctx context.Context, day, part int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	parts, err := s.parts(day, part)
	if err != nil {
		return err
	}

	for _, p := range parts {
		report, err := s.runner.Run(ctx, puzzle.Request{
			Day:    p.Day,
			Part:   p.Part,
			Input:  s.input,
			Strict: s.cfg.Solve.Strict,
		})
		if err != nil {
			return err
		}

		if err := s.print(report, len(parts) > 1); err != nil {
			return err
		}
	}
	return nil
}

func (s *solveSession) parts(day, part int) ([]puzzle.Puzzle, error) {
	if part != 0 {
		p, err := registry.Lookup(day, part)
		if err != nil {
			return nil, err
		}
		return []puzzle.Puzzle{p}, nil
	}

	parts := registry.Parts(day)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no puzzles registered for day %d", day)
	}
	return parts, nil
}

func (s *solveSession) print(report *puzzle.Report, labelled bool) error {
	format := s.cfg.Output.Format
	if labelled && (format == "" || format == puzzle.FormatText) {
		if _, err := fmt.Fprintf(s.out, "%s: ", puzzle.Key(report.Day, report.Part)); err != nil {
			return err
		}
	}
	if err := report.Encode(s.out, format); err != nil {
		return err
	}

	if s.quiet {
		return nil
	}
	return report.WriteDiagnostics(s.errOut)
}
