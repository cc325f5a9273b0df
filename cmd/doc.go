// Package cmd provides the command-line interface for aoc.
//
// This package implements all CLI commands using the Cobra framework.
//
// # Available Commands
//
//   - solve: Solve one day, or one part of a day, and print the answer
//   - list: List the registered puzzles
//   - watch: Solve again every time the input file changes
//   - init: Write a default .aoc.yml
//   - version: Show build information
//
// # Command Examples
//
//	// Solve both parts of day 3 with inputs/day03.txt
//	aoc solve 3
//
//	// Solve day 3 part 2 from standard input, failing on any bad group
//	aoc solve 3 2 --input - --strict < day03.txt
//
//	// List puzzles as JSON
//	aoc list -o json
//
// # Configuration
//
// Configuration is loaded from .aoc.yml, the --config flag or
// AOC_CONFIG_FILE, and AOC_ prefixed environment variables. Command-line
// flags take precedence over every other source.
package cmd
