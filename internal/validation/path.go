// Package validation checks user supplied paths before they reach the
// filesystem.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StdinPath names standard input wherever an input path is accepted.
const StdinPath = "-"

// DangerousChars are rejected in every configured or supplied path.
var DangerousChars = []string{";", "&", "|", "$", "`", "<", ">", "\"", "'", "\x00"}

// CheckPathChars reports the first dangerous character in path.
func CheckPathChars(path string) error {
	for _, char := range DangerousChars {
		if strings.Contains(path, char) {
			return fmt.Errorf("contains dangerous character: %q", char)
		}
	}
	return nil
}

// ValidateInputPath validates the path of a puzzle input. StdinPath is
// accepted. A path that exists must not be a directory; a missing file is
// left for the reader to report.
func ValidateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if path == StdinPath {
		return nil
	}

	if err := CheckPathChars(path); err != nil {
		return fmt.Errorf("invalid input path %s: %w", path, err)
	}

	cleanPath := filepath.Clean(path)
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return fmt.Errorf("input path %s is a directory", path)
	}

	return nil
}
