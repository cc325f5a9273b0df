package errors

import (
	"sync"
	"time"
)

// Diagnostic is a recoverable problem found while solving a puzzle.
type Diagnostic struct {
	Kind      string    `json:"kind" yaml:"kind"`
	Line      int       `json:"line" yaml:"line"`
	HasLine   bool      `json:"-" yaml:"-"`
	Message   string    `json:"message" yaml:"message"`
	Timestamp time.Time `json:"-" yaml:"-"`
}

// NewDiagnostic converts an error into a Diagnostic.
func NewDiagnostic(err error) Diagnostic {
	line, ok := LineOf(err)
	return Diagnostic{
		Kind:    KindOf(err),
		Line:    line,
		HasLine: ok,
		Message: err.Error(),
	}
}

// ErrorCollector collects recoverable errors in the order they were reported
type ErrorCollector struct {
	diagnostics []Diagnostic
	errors      []error
	mutex       sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		diagnostics: make([]Diagnostic, 0),
		errors:      make([]error, 0),
	}
}

// Add records an error and its diagnostic form
func (ec *ErrorCollector) Add(err error) {
	if err == nil {
		return
	}
	d := NewDiagnostic(err)
	d.Timestamp = time.Now()

	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.diagnostics = append(ec.diagnostics, d)
	ec.errors = append(ec.errors, err)
}

// Diagnostics returns all collected diagnostics
func (ec *ErrorCollector) Diagnostics() []Diagnostic {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	// Return a copy to avoid race conditions
	result := make([]Diagnostic, len(ec.diagnostics))
	copy(result, ec.diagnostics)
	return result
}

// Errors returns all collected errors
func (ec *ErrorCollector) Errors() []error {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]error, len(ec.errors))
	copy(result, ec.errors)
	return result
}

// HasErrors returns true if there are any errors
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.errors) > 0
}

// Len returns the number of collected errors
func (ec *ErrorCollector) Len() int {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.errors)
}

// Clear clears all errors
func (ec *ErrorCollector) Clear() {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.diagnostics = ec.diagnostics[:0]
	ec.errors = ec.errors[:0]
}

// ByKind returns diagnostics of a single kind
func (ec *ErrorCollector) ByKind(kind string) []Diagnostic {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	var matched []Diagnostic
	for _, d := range ec.diagnostics {
		if d.Kind == kind {
			matched = append(matched, d)
		}
	}
	return matched
}
