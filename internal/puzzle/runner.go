package puzzle

import (
	"context"
	"fmt"
	"time"

	"github.com/conneroisu/aoc2022/internal/lines"
	"github.com/conneroisu/aoc2022/internal/logging"
	"github.com/google/uuid"
)

// Input is an opened line source that must be closed after use.
type Input interface {
	lines.Reader
	Close() error
}

// OpenFunc opens the input named by path.
type OpenFunc func(path string) (Input, error)

// OpenFile opens path with lines.Open. "-" reads standard input.
func OpenFile(path string) (Input, error) {
	f, err := lines.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Request selects a puzzle and the input to run it on.
type Request struct {
	Day    int
	Part   int
	Input  string
	Strict bool
}

// Runner executes registered puzzles.
type Runner struct {
	registry *Registry
	logger   logging.Logger
	open     OpenFunc
	newID    func() string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithOpener replaces the function used to open inputs.
func WithOpener(open OpenFunc) RunnerOption {
	return func(r *Runner) { r.open = open }
}

// WithIDGenerator replaces the run identifier generator.
func WithIDGenerator(fn func() string) RunnerOption {
	return func(r *Runner) { r.newID = fn }
}

// NewRunner creates a Runner over registry.
func NewRunner(registry *Registry, logger logging.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Runner{
		registry: registry,
		logger:   logger.WithComponent("runner"),
		open:     OpenFile,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run solves one puzzle part. Problems the solver can skip over end up in the
// report's diagnostics; an unreadable input or a solver error fails the run
// and no partial answer is returned.
func (r *Runner) Run(ctx context.Context, req Request) (*Report, error) {
	p, err := r.registry.Lookup(req.Day, req.Part)
	if err != nil {
		return nil, err
	}

	runID := r.newID()
	ctx = logging.WithRunID(ctx, runID)
	logger := r.logger.With("puzzle", p.Key(), "input", req.Input)

	src, err := r.open(req.Input)
	if err != nil {
		logger.Debug(ctx, "Input unavailable", "error", err.Error())
		return nil, err
	}
	defer src.Close()

	collector := NewCollector(logger, req.Strict)
	perf := logging.StartOperation(logger, "solve")

	answer, err := p.Solver.Solve(ctx, src, collector)
	if err != nil {
		perf.EndQuietly(ctx, err)
		return nil, fmt.Errorf("%s: %w", p.Key(), err)
	}
	duration := perf.End(ctx)

	report := &Report{
		RunID:       runID,
		Day:         p.Day,
		Part:        p.Part,
		Name:        p.Name,
		Input:       req.Input,
		Answer:      answer,
		Diagnostics: collector.Diagnostics(),
		Duration:    duration,
	}

	logger.Info(ctx, "Puzzle solved",
		"answer", answer,
		"diagnostics", len(report.Diagnostics),
		"duration", duration.Round(time.Microsecond).String(),
	)

	return report, nil
}
