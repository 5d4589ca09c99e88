package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/stopcheck/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces the line-oriented diagnostic stream.
	FormatText Format = "text"
	// FormatJSON produces the report as machine-readable JSON.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation report: one line per diagnostic, a
// confirmation line when a fixed file was written, and the terminal
// summary line.
func (r *Reporter) Report(report *Report) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(report)
	default:
		return r.reportText(report)
	}
}

func (r *Reporter) reportJSON(report *Report) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(report), "encoding JSON report")
}

func (r *Reporter) reportText(report *Report) error {
	for _, issue := range report.Issues {
		line := issue.String()
		if issue.Severity == SeverityError {
			line = color.RedString("%s", line)
		}
		fmt.Fprintln(r.out, line)
	}

	if report.OutputPath != "" {
		fmt.Fprintf(r.out, "Wrote cleaned output to: %s\n", report.OutputPath)
	}

	if report.Passed() {
		fmt.Fprintln(r.out, color.GreenString("Validation passed: no issues found."))
	} else {
		fmt.Fprintln(r.out, color.RedString("Validation failed: see messages above."))
	}
	return nil
}
