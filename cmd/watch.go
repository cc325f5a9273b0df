package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conneroisu/aoc2022/internal/puzzle"
	"github.com/conneroisu/aoc2022/internal/validation"
	"github.com/conneroisu/aoc2022/internal/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch <day> [part]",
	Aliases: []string{"w"},
	Short:   "Solve again whenever the input changes",
	Long: `Solve a puzzle once and then again every time its input file is saved.
Changes arriving in quick succession are grouped using watch.debounce
from the configuration. Stdin cannot be watched.

Examples:
  aoc watch 3                 # Both parts of day 3
  aoc watch 3 2 -i draft.txt  # Watch another file
  aoc w 1 --strict            # Fail fast on every run`,
	Args: dayPartArgs,
	RunE: runWatch,
}

var (
	watchFlags    *StandardFlags
	watchDebounce time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchFlags = AddStandardFlags(watchCmd, "input", "solve", "output")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Quiet period before solving again (default from watch.debounce)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := watchFlags.ValidateFlags(); err != nil {
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
	watchFlags.Apply(cmd, cfg)
	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}

	input := watchFlags.InputFor(cfg, day)
	if input == validation.StdinPath {
		return fmt.Errorf("cannot watch stdin, name an input file with --input")
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr(), watchFlags.Verbose, watchFlags.Quiet)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := &solveSession{
		runner: puzzle.NewRunner(registry, logger),
		logger: logger,
		cfg:    cfg,
		input:  input,
		quiet:  watchFlags.Quiet,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (press Ctrl+C to stop)\n", input)
	return watchAndSolve(ctx, session, day, part)
}

// watchAndSolve solves once and then after every batch of changes to the
// session input until ctx is done. Failed runs are printed and watching
// continues.
func watchAndSolve(ctx context.Context, session *solveSession, day, part int) error {
	solve := func(ctx context.Context) {
		if err := session.Solve(ctx, day, part); err != nil {
			fmt.Fprintf(session.errOut, "Error: %v\n", err)
		}
	}

	fileWatcher, err := watcher.NewFileWatcher(session.cfg.Watch.Debounce, session.logger)
	if err != nil {
		return err
	}
	if err := fileWatcher.WatchFile(session.input); err != nil {
		_ = fileWatcher.Stop()
		return fmt.Errorf("failed to watch %s: %w", session.input, err)
	}
	fileWatcher.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		session.logger.Debug(ctx, "Input changed", "events", len(events), "last", events[len(events)-1].Type.String())
		solve(ctx)
		return nil
	})

	solve(ctx)

	if err := fileWatcher.Start(ctx); err != nil {
		_ = fileWatcher.Stop()
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	<-ctx.Done()
	return fileWatcher.Stop()
}
