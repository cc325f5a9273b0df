package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeParse    ErrorType = "parse"
	ErrorTypeGroup    ErrorType = "group"
	ErrorTypeMatch    ErrorType = "match"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeInternal ErrorType = "internal"
)

// PuzzleError is a structured error type with context.
type PuzzleError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Puzzle      string
	Source      string
	Line        int
	Recoverable bool
}

// Error implements the error interface.
func (e *PuzzleError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Puzzle != "" {
		parts = append(parts, "puzzle:"+e.Puzzle)
	}

	if e.Source != "" {
		parts = append(parts, fmt.Sprintf("%s:%d", e.Source, e.Line))
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *PuzzleError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison. Every input error, including a read
// failure after the source was opened, matches ErrSourceUnavailable.
func (e *PuzzleError) Is(target error) bool {
	var t *PuzzleError
	if errors.As(target, &t) {
		if e.Type == t.Type && e.Code == t.Code {
			return true
		}
		return e.Type == ErrorTypeInput && t.Type == ErrorTypeInput && t.Code == ErrCodeSourceUnavailable
	}

	return false
}

// WithContext adds context information to the error.
func (e *PuzzleError) WithContext(key string, value interface{}) *PuzzleError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithLocation records the input and the 0-based line the error refers to.
func (e *PuzzleError) WithLocation(source string, line int) *PuzzleError {
	e.Source = source
	e.Line = line

	return e
}

// WithPuzzle adds puzzle context.
func (e *PuzzleError) WithPuzzle(puzzle string) *PuzzleError {
	e.Puzzle = puzzle

	return e
}

// LineIndex reports the 0-based input line the error refers to.
func (e *PuzzleError) LineIndex() int {
	return e.Line
}

// NewInputError creates an error for an input source that cannot be opened or read.
func NewInputError(code, message string, cause error) *PuzzleError {
	return &PuzzleError{
		Type:        ErrorTypeInput,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewParseError creates a parse error for a malformed input line.
func NewParseError(code, message string, cause error) *PuzzleError {
	return &PuzzleError{
		Type:        ErrorTypeParse,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewGroupError creates a grouping error.
func NewGroupError(code, message string) *PuzzleError {
	return &PuzzleError{
		Type:        ErrorTypeGroup,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewMatchError creates an error for a lookup that found nothing.
func NewMatchError(code, message string) *PuzzleError {
	return &PuzzleError{
		Type:        ErrorTypeMatch,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *PuzzleError {
	return &PuzzleError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *PuzzleError {
	return &PuzzleError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var pe *PuzzleError
	if errors.As(err, &pe) {
		return pe.Recoverable
	}

	return false
}

// IsInputError checks if an error comes from an unavailable input source.
func IsInputError(err error) bool {
	return HasErrorType(err, ErrorTypeInput)
}

// Common error codes.
const (
	ErrCodeSourceUnavailable = "ERR_SOURCE_UNAVAILABLE"
	ErrCodeSourceRead        = "ERR_SOURCE_READ"
	ErrCodeIncompleteGroup   = "ERR_INCOMPLETE_GROUP"
	ErrCodeNoCommonItem      = "ERR_NO_COMMON_ITEM"
	ErrCodeInvalidLine       = "ERR_INVALID_LINE"
	ErrCodeUnknownPuzzle     = "ERR_UNKNOWN_PUZZLE"
	ErrCodeConfigInvalid     = "ERR_CONFIG_INVALID"
	ErrCodeInternalError     = "ERR_INTERNAL"
)

// Sentinels for errors.Is checks. Concrete error types unwrap to these.
var (
	ErrSourceUnavailable = NewInputError(ErrCodeSourceUnavailable, "input source unavailable", nil)
	ErrIncompleteGroup   = NewGroupError(ErrCodeIncompleteGroup, "incomplete group")
	ErrNoCommonItem      = NewMatchError(ErrCodeNoCommonItem, "no common item")
	ErrInvalidLine       = NewParseError(ErrCodeInvalidLine, "invalid line", nil)
)

// ErrSourceNotOpened creates the error returned when an input cannot be opened.
func ErrSourceNotOpened(path string, cause error) *PuzzleError {
	return NewInputError(ErrCodeSourceUnavailable, "cannot open input", cause).
		WithContext("path", path)
}

// ErrLineInvalid creates a parse error for the given line.
func ErrLineInvalid(line int, text, reason string) *PuzzleError {
	return NewParseError(ErrCodeInvalidLine, fmt.Sprintf("invalid line %q: %s", text, reason), nil).
		WithLocation("input", line)
}

// ErrPuzzleNotFound creates an error for an unregistered day/part.
func ErrPuzzleNotFound(day, part int) *PuzzleError {
	return NewConfigError(ErrCodeUnknownPuzzle, fmt.Sprintf("no solver registered for day %d part %d", day, part)).
		WithContext("day", day).
		WithContext("part", part)
}
