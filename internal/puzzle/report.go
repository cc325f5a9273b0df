package puzzle

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	perrors "github.com/conneroisu/aoc2022/internal/errors"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Report.Encode.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Report is the outcome of one successful run.
type Report struct {
	RunID       string               `json:"run_id" yaml:"run_id"`
	Day         int                  `json:"day" yaml:"day"`
	Part        int                  `json:"part" yaml:"part"`
	Name        string               `json:"name" yaml:"name"`
	Input       string               `json:"input" yaml:"input"`
	Answer      int                  `json:"answer" yaml:"answer"`
	Diagnostics []perrors.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	Duration    time.Duration        `json:"-" yaml:"-"`
}

type encodedReport struct {
	Report   `yaml:",inline"`
	Duration string `json:"duration" yaml:"duration"`
}

// Encode writes the report to w. The text format is the bare answer so the
// output can be piped; diagnostics go through WriteDiagnostics instead.
func (r *Report) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		_, err := fmt.Fprintln(w, r.Answer)
		return err
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r.encoded())
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(r.encoded())
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(Formats, ", "))
	}
}

func (r *Report) encoded() encodedReport {
	diags := r.Diagnostics
	if diags == nil {
		diags = []perrors.Diagnostic{}
	}
	copyReport := *r
	copyReport.Diagnostics = diags
	return encodedReport{Report: copyReport, Duration: r.Duration.String()}
}

// WriteDiagnostics prints one human readable line per diagnostic.
func (r *Report) WriteDiagnostics(w io.Writer) error {
	for _, d := range r.Diagnostics {
		var err error
		if d.HasLine {
			_, err = fmt.Fprintf(w, "%s: line %d: %s\n", r.key(), d.Line, d.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s: %s\n", r.key(), d.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Report) key() string {
	return Key(r.Day, r.Part)
}
