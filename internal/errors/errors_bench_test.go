package errors

import (
	"fmt"
	"testing"
)

func BenchmarkErrorCollector_Add(b *testing.B) {
	collector := NewErrorCollector()

	b.ResetTimer()
	for i := range b.N {
		collector.Add(ErrLineInvalid(i, fmt.Sprintf("line-%d", i), "bad"))
	}
}

func BenchmarkErrorCollector_Diagnostics(b *testing.B) {
	collector := NewErrorCollector()

	// Pre-populate with errors
	for i := range 1000 {
		collector.Add(ErrLineInvalid(i, fmt.Sprintf("line-%d", i), "bad"))
	}

	b.ResetTimer()
	for range b.N {
		_ = collector.Diagnostics()
	}
}

func BenchmarkPuzzleError_Error(b *testing.B) {
	err := ErrLineInvalid(42, "A Q", "unknown shape").WithPuzzle("day02")

	b.ResetTimer()
	for range b.N {
		_ = err.Error()
	}
}
