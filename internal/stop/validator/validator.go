// Package validator implements the stop dataset validation and repair
// pipeline: an ordered set of independent per-record checks, each
// returning its diagnostics and a pass/fail verdict for the row.
package validator

import "fmt"

// Severity represents the impact of a diagnostic.
type Severity int

const (
	// SeverityError indicates a finding that fails the row.
	SeverityError Severity = iota
	// SeverityInfo indicates an informational note, such as a repair
	// applied in fix mode.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Issue is one diagnostic produced for one row.
type Issue struct {
	// Row is the 1-based index of the record in the dataset.
	Row int `json:"row"`
	// Check names the check that produced the diagnostic.
	Check string `json:"check"`
	// Severity indicates whether the finding failed the row.
	Severity Severity `json:"severity"`
	// Message is the human-readable diagnostic text.
	Message string `json:"message"`
}

// String renders the issue as one report line.
func (i Issue) String() string {
	return fmt.Sprintf("Row %d: %s", i.Row, i.Message)
}

// Outcome is the result of running one check against one record.
// Checks mutate the record in place when repairing; Record carries it
// through the pipeline regardless.
type Outcome struct {
	// Passed is false when the check failed the row.
	Passed bool
	// Issues are the diagnostics produced, without Row set; the runner
	// fills that in.
	Issues []Issue
}

func pass() Outcome {
	return Outcome{Passed: true}
}

func (o *Outcome) errorf(check, format string, args ...any) {
	o.Issues = append(o.Issues, Issue{
		Check:    check,
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
	})
	o.Passed = false
}

func (o *Outcome) infof(check, format string, args ...any) {
	o.Issues = append(o.Issues, Issue{
		Check:    check,
		Severity: SeverityInfo,
		Message:  fmt.Sprintf(format, args...),
	})
}
