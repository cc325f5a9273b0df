package puzzle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
	"github.com/conneroisu/aoc2022/internal/lines"
	"github.com/conneroisu/aoc2022/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type memInput struct {
	*lines.Source
	closed bool
}

func (m *memInput) Close() error {
	m.closed = true
	return nil
}

// countLines answers the number of lines and reports every empty one.
func countLines(ctx context.Context, src lines.Reader, diag Diagnostics) (int, error) {
	n := 0
	for src.Next() {
		if src.Line() == "" {
			if err := diag.Report(ctx, perrors.ErrLineInvalid(src.Index(), "", "empty")); err != nil {
				return 0, err
			}
			continue
		}
		n++
	}
	return n, src.Err()
}

func newTestRunner(t *testing.T, content string, opened **memInput) (*Runner, *observer.ObservedLogs) {
	t.Helper()

	registry := NewRegistry()
	registry.MustRegister(Puzzle{Day: 3, Part: 2, Name: "line count", Solver: SolverFunc(countLines)})

	core, logs := observer.New(zapcore.DebugLevel)
	runner := NewRunner(registry, logging.NewFromZap(zap.New(core)),
		WithIDGenerator(func() string { return "fixed-id" }),
		WithOpener(func(path string) (Input, error) {
			in := &memInput{Source: lines.FromString(content)}
			if opened != nil {
				*opened = in
			}
			return in, nil
		}),
	)
	return runner, logs
}

func TestRunnerRun(t *testing.T) {
	var opened *memInput
	runner, logs := newTestRunner(t, "a\n\nb\nc\n", &opened)

	report, err := runner.Run(context.Background(), Request{Day: 3, Part: 2, Input: "mem"})
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", report.RunID)
	assert.Equal(t, 3, report.Answer)
	assert.Equal(t, "line count", report.Name)
	assert.Equal(t, "mem", report.Input)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, 1, report.Diagnostics[0].Line)
	assert.True(t, opened.closed)

	solved := logs.FilterMessage("Puzzle solved").All()
	require.Len(t, solved, 1)
	fields := solved[0].ContextMap()
	assert.Equal(t, "fixed-id", fields["run_id"])
	assert.Equal(t, "day03/part2", fields["puzzle"])
	assert.Equal(t, "runner", fields["component"])
}

func TestRunnerStrict(t *testing.T) {
	runner, _ := newTestRunner(t, "a\n\nb\n", nil)

	report, err := runner.Run(context.Background(), Request{Day: 3, Part: 2, Input: "mem", Strict: true})
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "day03/part2: strict mode")
	assert.True(t, errors.Is(err, perrors.ErrInvalidLine))
}

func TestRunnerFailuresLogBelowWarn(t *testing.T) {
	runner, logs := newTestRunner(t, "a\n\nb\n", nil)

	_, err := runner.Run(context.Background(), Request{Day: 3, Part: 2, Input: "mem", Strict: true})
	require.Error(t, err)

	registry := NewRegistry()
	registry.MustRegister(Puzzle{Day: 3, Part: 2, Solver: SolverFunc(countLines)})
	core, missingLogs := observer.New(zapcore.DebugLevel)
	missing := NewRunner(registry, logging.NewFromZap(zap.New(core)))
	_, err = missing.Run(context.Background(), Request{Day: 3, Part: 2, Input: filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
	assert.Equal(t, 1, missingLogs.FilterMessage("Input unavailable").Len())

	// The caller prints the returned error; the log must not repeat it.
	for _, entry := range append(logs.All(), missingLogs.All()...) {
		assert.Less(t, entry.Level, zapcore.WarnLevel, entry.Message)
	}
}

func TestRunnerUnknownPuzzle(t *testing.T) {
	runner, _ := newTestRunner(t, "", nil)

	_, err := runner.Run(context.Background(), Request{Day: 9, Part: 1, Input: "mem"})
	require.Error(t, err)
	assert.True(t, perrors.HasErrorCode(err, perrors.ErrCodeUnknownPuzzle))
}

func TestRunnerMissingInput(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(Puzzle{Day: 3, Part: 2, Solver: SolverFunc(countLines)})
	runner := NewRunner(registry, nil)

	report, err := runner.Run(context.Background(), Request{Day: 3, Part: 2, Input: filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
	assert.Nil(t, report, "no partial answer for an unavailable source")
	assert.True(t, errors.Is(err, perrors.ErrSourceUnavailable))
}

func TestRunnerReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day03.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\ny\n"), 0o644))

	registry := NewRegistry()
	registry.MustRegister(Puzzle{Day: 3, Part: 2, Solver: SolverFunc(countLines)})
	runner := NewRunner(registry, logging.NewNop())

	report, err := runner.Run(context.Background(), Request{Day: 3, Part: 2, Input: path})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Answer)
	assert.NotEmpty(t, report.RunID)
}
