package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/conneroisu/aoc2022/internal/version"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	versionFormat   string
	versionShort    bool
	versionDetailed bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for aoc including:

- Version number
- Git commit hash
- Build timestamp
- Go version and target platform

Examples:
  aoc version              # Show version and commit
  aoc version --short      # Version only
  aoc version --detailed   # One line per field
  aoc version -f json      # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json, yaml)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "Show detailed version information")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	return writeVersion(cmd.OutOrStdout(), version.Get(), versionFormat)
}

func writeVersion(w io.Writer, info *version.BuildInfo, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(info)
	case "text", "":
		var err error
		switch {
		case versionShort:
			_, err = fmt.Fprintln(w, info.Version)
		case versionDetailed:
			_, err = fmt.Fprintf(w, "aoc\n%s\n", info.Detailed())
		default:
			line := "aoc " + info.Short()
			if info.Dirty {
				line += " (dirty)"
			}
			_, err = fmt.Fprintln(w, line)
		}
		return err
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", format)
	}
}
