package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Wrap wraps an error with additional context, creating a PuzzleError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *PuzzleError {
	if err == nil {
		return nil
	}

	// If it's already a PuzzleError, keep its location and recoverability
	var pe *PuzzleError
	if errors.As(err, &pe) {
		return &PuzzleError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       err,
			Context:     pe.Context,
			Puzzle:      pe.Puzzle,
			Source:      pe.Source,
			Line:        pe.Line,
			Recoverable: pe.Recoverable,
		}
	}

	return &PuzzleError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeParse || errType == ErrorTypeGroup || errType == ErrorTypeMatch,
	}
}

// WrapInput wraps an error as an input error (non-recoverable)
func WrapInput(err error, code, message string) *PuzzleError {
	pe := Wrap(err, ErrorTypeInput, code, message)
	if pe != nil {
		pe.Recoverable = false
	}
	return pe
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) *PuzzleError {
	pe := Wrap(err, ErrorTypeConfig, code, message)
	if pe != nil {
		pe.Recoverable = false
	}
	return pe
}

// GetErrorChain returns all errors in the chain from outermost to innermost
func GetErrorChain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		if pe, ok := err.(*PuzzleError); ok {
			err = pe.Cause
		} else if wrapper, ok := err.(interface{ Unwrap() error }); ok {
			err = wrapper.Unwrap()
		} else {
			break
		}
	}
	return chain
}

// GetRootCause returns the deepest underlying error in the chain
func GetRootCause(err error) error {
	chain := GetErrorChain(err)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

// HasErrorCode checks if any error in the chain has the specified code
func HasErrorCode(err error, code string) bool {
	for _, e := range GetErrorChain(err) {
		if pe, ok := e.(*PuzzleError); ok && pe.Code == code {
			return true
		}
	}
	return false
}

// HasErrorType checks if any error in the chain has the specified type
func HasErrorType(err error, errType ErrorType) bool {
	for _, e := range GetErrorChain(err) {
		if pe, ok := e.(*PuzzleError); ok && pe.Type == errType {
			return true
		}
	}
	return false
}

// LineOf returns the 0-based line an error refers to, if any error in the
// chain carries one.
func LineOf(err error) (int, bool) {
	for _, e := range GetErrorChain(err) {
		if pe, ok := e.(*PuzzleError); ok {
			if pe.Source != "" {
				return pe.Line, true
			}
			continue
		}
		if located, ok := e.(interface{ LineIndex() int }); ok {
			return located.LineIndex(), true
		}
	}
	return 0, false
}

// KindOf returns a short machine-friendly name for the error category.
func KindOf(err error) string {
	for _, e := range GetErrorChain(err) {
		if pe, ok := e.(*PuzzleError); ok {
			return strings.TrimPrefix(strings.ToLower(pe.Code), "err_")
		}
	}
	return "error"
}

// FormatError formats an error for display on a terminal
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	if line, ok := LineOf(err); ok {
		return fmt.Sprintf("line %d: %v", line, err)
	}
	return err.Error()
}
