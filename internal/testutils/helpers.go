// Package testutils holds fixtures and helpers shared by the package tests.
package testutils

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/conneroisu/aoc2022/internal/config"
	"github.com/stretchr/testify/require"
)

// Samples holds the example input published with each puzzle.
var Samples = map[int]string{
	1: "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n",
	2: "A Y\nB X\nC Z\n",
	3: "vJrwpWtwJgWrhcsFMMfFFhFp\n" +
		"jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL\n" +
		"PmmdzqPrVvPwwTWBwg\n" +
		"wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn\n" +
		"ttgJtRGJQctTZtZT\n" +
		"CrZsJsPPZsGzwwsLwLmpwMDw\n",
	4: "2-4,6-8\n2-3,4-5\n5-7,7-9\n2-8,3-7\n6-6,4-6\n2-6,4-8\n",
}

// SampleAnswers maps a puzzle key to the answer for its sample.
var SampleAnswers = map[string]int{
	"day01/part1": 24000,
	"day01/part2": 45000,
	"day02/part1": 15,
	"day02/part2": 12,
	"day03/part1": 157,
	"day03/part2": 70,
	"day04/part1": 2,
	"day04/part2": 4,
}

// SampleLines returns the first n lines of the sample for day, each with
// its newline.
func SampleLines(day, n int) string {
	var out []byte
	rest := []byte(Samples[day])
	for i := 0; i < n && len(rest) > 0; i++ {
		end := bytes.IndexByte(rest, '\n')
		if end < 0 {
			end = len(rest) - 1
		}
		out = append(out, rest[:end+1]...)
		rest = rest[end+1:]
	}
	return string(out)
}

// CreateTempProject creates a temporary directory with an empty input
// directory laid out like config.Default.
func CreateTempProject(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	err := os.MkdirAll(filepath.Join(tempDir, config.DefaultInputDir), 0o755)
	require.NoError(t, err)

	return tempDir
}

// CreateTestConfig returns the default configuration rooted at projectDir.
func CreateTestConfig(projectDir string) *config.Config {
	cfg := config.Default()
	cfg.Input.Dir = filepath.Join(projectDir, config.DefaultInputDir)
	cfg.Watch.Debounce = 20 * time.Millisecond
	return cfg
}

// WriteFile writes content to name below dir, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteInput writes the input of day where cfg expects it.
func WriteInput(t *testing.T, cfg *config.Config, day int, content string) string {
	t.Helper()
	return WriteFile(t, "", cfg.InputPath(day), content)
}

// AssertFilePermissions checks the permission bits of path
func AssertFilePermissions(t *testing.T, path string, expectedMode os.FileMode) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)

	actualMode := info.Mode()
	require.Equal(t, expectedMode, actualMode&os.FileMode(0o777),
		"File %s has incorrect permissions: got %o, want %o",
		path, actualMode&os.FileMode(0o777), expectedMode)
}

// SyncBuffer is a bytes.Buffer that can be written from several goroutines.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
