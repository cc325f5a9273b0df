// Package internal contains the implementation packages of the aoc CLI.
//
// # Package Organization
//
// The internal packages are organized in layers. A package only imports
// packages listed above it:
//
//   - errors: Structured errors, sentinels and the diagnostics collector
//   - logging: Logger interface over zap, run IDs and timing
//   - lines: Line sources over files, stdin and strings
//   - validation: Checks on user supplied paths
//   - config: Configuration loading through viper and validation
//   - puzzle: Solver contract, registry, runner and reports
//   - calories, rps, rucksack, cleanup: The solvers of days 1 to 4
//   - puzzles: Registration of every solver
//   - watcher: File change notification with debouncing
//   - version: Build information
//   - testutils: Shared test fixtures
//
// # Inter-Package Communication
//
//   - A solver reads its input once through lines.Reader
//   - Recoverable problems go to puzzle.Diagnostics instead of failing the run
//   - The runner turns a solver answer and its diagnostics into a puzzle.Report
//   - The watcher delivers batches of input changes to the watch command
//
// # Testing Strategy
//
//   - Table driven unit tests with testify and go-cmp
//   - Property tests with gopter behind the property build tag
//   - Leak checks with goleak for the watcher goroutines
//   - Log assertions with the zap observer
//
// For detailed documentation, see the individual package documentation.
package internal
