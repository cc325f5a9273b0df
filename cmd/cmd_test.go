package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/conneroisu/aoc2022/internal/config"
	"github.com/conneroisu/aoc2022/internal/logging"
	"github.com/conneroisu/aoc2022/internal/puzzle"
	"github.com/conneroisu/aoc2022/internal/testutils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rucksackSample = testutils.Samples[3]

// resetCommandState puts the global command tree back to its defaults so
// that every test starts from a fresh parse.
func resetCommandState() {
	viper.Reset()
	cfgFile = ""

	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetCommandState()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// workspace creates a temporary directory with the given input files and
// makes it the working directory.
func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		testutils.WriteFile(t, dir, name, content)
	}
	t.Chdir(dir)
	return dir
}

func TestSolveCommand(t *testing.T) {
	workspace(t, map[string]string{
		"inputs/day03.txt": rucksackSample,
		"other.txt":        testutils.SampleLines(3, 3),
	})

	t.Run("single part from default input", func(t *testing.T) {
		stdout, stderr, err := executeCommand(t, "solve", "3", "2")
		require.NoError(t, err)
		assert.Equal(t, "70\n", stdout)
		assert.Empty(t, stderr)
	})

	t.Run("every part is labelled", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "s", "day3")
		require.NoError(t, err)
		assert.Equal(t, "day03/part1: 157\nday03/part2: 70\n", stdout)
	})

	t.Run("input flag", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "solve", "3", "2", "-i", "other.txt")
		require.NoError(t, err)
		assert.Equal(t, "18\n", stdout)
	})

	t.Run("json report", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "solve", "3", "2", "-o", "json")
		require.NoError(t, err)

		var report map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(stdout), &report))
		assert.Equal(t, float64(70), report["answer"])
		assert.Equal(t, "day03/part2", puzzle.Key(int(report["day"].(float64)), int(report["part"].(float64))))
		assert.NotEmpty(t, report["run_id"])
		assert.Empty(t, report["diagnostics"])
	})

	t.Run("missing input", func(t *testing.T) {
		_, stderr, err := executeCommand(t, "solve", "1")
		require.Error(t, err)
		assert.Equal(t, 1, strings.Count(stderr, "day01.txt"), "error printed once: %s", stderr)
	})

	t.Run("unknown puzzle", func(t *testing.T) {
		_, _, err := executeCommand(t, "solve", "9", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "day 9 part 1")
	})

	t.Run("invalid arguments", func(t *testing.T) {
		for _, args := range [][]string{{"solve"}, {"solve", "x"}, {"solve", "3", "3"}, {"solve", "26"}} {
			_, _, err := executeCommand(t, args...)
			assert.Error(t, err, "args %v", args)
		}
	})

	t.Run("invalid output format", func(t *testing.T) {
		_, _, err := executeCommand(t, "solve", "3", "2", "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("input is a directory", func(t *testing.T) {
		_, _, err := executeCommand(t, "solve", "3", "2", "-i", "inputs")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "directory")
	})

	t.Run("quiet and verbose", func(t *testing.T) {
		_, _, err := executeCommand(t, "solve", "3", "2", "-q", "-v")
		require.Error(t, err)
	})
}

func TestSolveCommandDiagnostics(t *testing.T) {
	partial := testutils.SampleLines(3, 4)
	workspace(t, map[string]string{"inputs/day03.txt": partial})

	t.Run("best effort", func(t *testing.T) {
		stdout, stderr, err := executeCommand(t, "solve", "3", "2")
		require.NoError(t, err)
		assert.Equal(t, "18\n", stdout)
		assert.Contains(t, stderr, "day03/part2: line 3:")
	})

	t.Run("quiet", func(t *testing.T) {
		stdout, stderr, err := executeCommand(t, "solve", "3", "2", "--quiet")
		require.NoError(t, err)
		assert.Equal(t, "18\n", stdout)
		assert.Empty(t, stderr)
	})

	t.Run("strict flag", func(t *testing.T) {
		stdout, stderr, err := executeCommand(t, "solve", "3", "2", "--strict")
		require.Error(t, err)
		assert.Empty(t, stdout)
		assert.Equal(t, 1, strings.Count(stderr, "strict mode"), "error printed once: %s", stderr)
	})

	t.Run("strict from environment", func(t *testing.T) {
		t.Setenv("AOC_SOLVE_STRICT", "true")
		_, _, err := executeCommand(t, "solve", "3", "2")
		require.Error(t, err)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		t.Setenv("AOC_SOLVE_STRICT", "true")
		stdout, _, err := executeCommand(t, "solve", "3", "2", "--strict=false")
		require.NoError(t, err)
		assert.Equal(t, "18\n", stdout)
	})
}

func TestSolveCommandConfigFile(t *testing.T) {
	workspace(t, map[string]string{
		"puzzles/input-3.txt": rucksackSample,
		config.DefaultFile:    "input:\n  dir: puzzles\n  pattern: input-%d.txt\noutput:\n  format: yaml\n",
		"custom.yml":          "input:\n  dir: puzzles\n  pattern: input-%d.txt\n",
	})

	stdout, _, err := executeCommand(t, "solve", "3", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "answer: 70")

	stdout, _, err = executeCommand(t, "solve", "3", "2", "--config", "custom.yml")
	require.NoError(t, err)
	assert.Equal(t, "70\n", stdout)

	_, _, err = executeCommand(t, "solve", "3", "2", "--config", "missing.yml")
	require.Error(t, err)

	t.Setenv("AOC_INPUT_DIR", "elsewhere")
	_, _, err = executeCommand(t, "solve", "3", "2")
	require.Error(t, err)
}

func TestSolveCommandInvalidConfig(t *testing.T) {
	workspace(t, map[string]string{
		config.DefaultFile: "output:\n  format: xml\n",
	})

	_, _, err := executeCommand(t, "solve", "3", "2", "-i", "whatever.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestListCommand(t *testing.T) {
	workspace(t, nil)

	stdout, _, err := executeCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "DAY")
	assert.Contains(t, stdout, "Rucksack Reorganization")
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), registry.Len()+1)

	stdout, _, err = executeCommand(t, "l", "-o", "json")
	require.NoError(t, err)
	var infos []PuzzleInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))
	require.Len(t, infos, registry.Len())
	assert.Equal(t, "day01/part1", infos[0].Key)
	assert.Equal(t, "day03/part2", infos[5].Key)

	stdout, _, err = executeCommand(t, "list", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "key: day04/part2")
}

func TestWritePuzzleTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePuzzleList(&buf, nil, ""))
	assert.Equal(t, "No puzzles registered.\n", buf.String())
}

func TestInitCommand(t *testing.T) {
	dir := workspace(t, nil)

	stdout, _, err := executeCommand(t, "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, config.DefaultFile)
	assert.FileExists(t, filepath.Join(dir, config.DefaultFile))
	assert.DirExists(t, filepath.Join(dir, config.DefaultInputDir))

	_, _, err = executeCommand(t, "init")
	require.Error(t, err)

	_, _, err = executeCommand(t, "init", "--force")
	require.NoError(t, err)

	_, _, err = executeCommand(t, "init", "nested")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "nested", config.DefaultFile))

	// The written file loads back to the defaults.
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, config.DefaultFile))
	require.NoError(t, v.ReadInConfig())
	config.Bind(v)
	loaded, err := config.LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "aoc "))

	stdout, _, err = executeCommand(t, "version", "--short")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "aoc")
	assert.NotEmpty(t, strings.TrimSpace(stdout))

	stdout, _, err = executeCommand(t, "version", "--detailed")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Go: ")

	stdout, _, err = executeCommand(t, "version", "-f", "json")
	require.NoError(t, err)
	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "go_version")

	stdout, _, err = executeCommand(t, "version", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "platform: ")

	_, _, err = executeCommand(t, "version", "-f", "xml")
	require.Error(t, err)
}

func TestParseDayPart(t *testing.T) {
	tests := []struct {
		args    []string
		day     int
		part    int
		wantErr bool
	}{
		{args: []string{"3"}, day: 3},
		{args: []string{"3", "2"}, day: 3, part: 2},
		{args: []string{"Day03", "part1"}, day: 3, part: 1},
		{args: []string{"25", "1"}, day: 25, part: 1},
		{args: nil, wantErr: true},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"26"}, wantErr: true},
		{args: []string{"3", "0"}, wantErr: true},
		{args: []string{"3", "two"}, wantErr: true},
		{args: []string{"3", "1", "2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			day, part, err := parseDayPart(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.day, day)
			assert.Equal(t, tt.part, part)
		})
	}
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("", puzzle.Formats))
	assert.NoError(t, ValidateFormat("JSON", puzzle.Formats))
	assert.Error(t, ValidateFormat("xml", puzzle.Formats))
}

func TestAddFlagValidation(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("level", "info", "")
	AddFlagValidation(cmd.Flags(), "level", func(s string) error {
		if s == "bad" {
			return assert.AnError
		}
		return nil
	})
	AddFlagValidation(cmd.Flags(), "missing", nil)

	assert.NoError(t, cmd.Flags().Set("level", "debug"))
	assert.ErrorContains(t, cmd.Flags().Set("level", "bad"), assert.AnError.Error())
	assert.ErrorIs(t, cmd.Flags().Lookup("level").Value.Set("bad"), assert.AnError)
	got, _ := cmd.Flags().GetString("level")
	assert.Equal(t, "debug", got)
}

func TestWatchAndSolve(t *testing.T) {
	cfg := testutils.CreateTestConfig(testutils.CreateTempProject(t))
	input := testutils.WriteInput(t, cfg, 3, testutils.SampleLines(3, 3))

	var stdout, stderr testutils.SyncBuffer
	session := &solveSession{
		runner: puzzle.NewRunner(registry, logging.NewNop()),
		logger: logging.NewNop(),
		cfg:    cfg,
		input:  input,
		out:    &stdout,
		errOut: &stderr,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watchAndSolve(ctx, session, 3, 2) }()

	require.Eventually(t, func() bool { return stdout.String() == "18\n" }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(input, []byte(rucksackSample), 0o644))
	require.Eventually(t, func() bool {
		return strings.HasSuffix(stdout.String(), "70\n")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
	assert.Empty(t, stderr.String())
}

func TestWatchCommandRejectsStdin(t *testing.T) {
	workspace(t, nil)

	_, _, err := executeCommand(t, "watch", "3", "-i", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}

func TestWatchMissingInput(t *testing.T) {
	session := &solveSession{
		runner: puzzle.NewRunner(registry, nil),
		logger: logging.NewNop(),
		cfg:    config.Default(),
		input:  filepath.Join(t.TempDir(), "missing", "day03.txt"),
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}
	err := watchAndSolve(context.Background(), session, 3, 2)
	require.Error(t, err)
}
