package puzzle

import (
	"context"
	"fmt"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
	"github.com/conneroisu/aoc2022/internal/logging"
)

// Collector is the Diagnostics implementation used by the Runner. It keeps
// every reported problem, logs it at info level and, in strict mode, turns the
// first one into a fatal error.
type Collector struct {
	errs   *perrors.ErrorCollector
	logger logging.Logger
	strict bool
}

// NewCollector creates a Collector. A nil logger discards log output.
func NewCollector(logger logging.Logger, strict bool) *Collector {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Collector{
		errs:   perrors.NewErrorCollector(),
		logger: logger,
		strict: strict,
	}
}

// Report records err.
func (c *Collector) Report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	c.errs.Add(err)

	fields := []interface{}{"kind", perrors.KindOf(err)}
	if line, ok := perrors.LineOf(err); ok {
		fields = append(fields, "line", line)
	}
	c.logger.Info(ctx, "recoverable problem in input", append(fields, "error", err.Error())...)

	if c.strict {
		return fmt.Errorf("strict mode: %w", err)
	}
	return nil
}

// Diagnostics returns what has been reported so far, in order.
func (c *Collector) Diagnostics() []perrors.Diagnostic {
	return c.errs.Diagnostics()
}

// Errors returns the reported errors, in order.
func (c *Collector) Errors() []error {
	return c.errs.Errors()
}
