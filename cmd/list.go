package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/conneroisu/aoc2022/internal/puzzle"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List solvable puzzles",
	Long: `List every registered puzzle with its day, part and description.

Examples:
  aoc list            # Table
  aoc list -o json    # JSON
  aoc l -o yaml       # YAML`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFlags *StandardFlags

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = AddStandardFlags(listCmd, "output")
}

// PuzzleInfo is the listed form of a registered puzzle.
type PuzzleInfo struct {
	Key         string `json:"key" yaml:"key"`
	Day         int    `json:"day" yaml:"day"`
	Part        int    `json:"part" yaml:"part"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func runList(cmd *cobra.Command, args []string) error {
	if err := listFlags.ValidateFlags(); err != nil {
		return err
	}

	infos := make([]PuzzleInfo, 0, registry.Len())
	for _, p := range registry.All() {
		infos = append(infos, PuzzleInfo{
			Key:         p.Key(),
			Day:         p.Day,
			Part:        p.Part,
			Name:        p.Name,
			Description: p.Description,
		})
	}

	return writePuzzleList(cmd.OutOrStdout(), infos, listFlags.OutputFormat)
}

func writePuzzleList(w io.Writer, infos []PuzzleInfo, format string) error {
	switch strings.ToLower(format) {
	case "", puzzle.FormatText:
		return writePuzzleTable(w, infos)
	case puzzle.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	case puzzle.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(infos)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writePuzzleTable(w io.Writer, infos []PuzzleInfo) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(w, "No puzzles registered.")
		return err
	}

	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tPART\tNAME\tDESCRIPTION")
	for _, info := range infos {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", info.Day, info.Part, title.String(info.Name), info.Description)
	}
	return tw.Flush()
}
