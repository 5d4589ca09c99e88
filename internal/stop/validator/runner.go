package validator

import (
	"encoding/json"
	"log/slog"

	"github.com/thoreinstein/stopcheck/internal/rules"
	"github.com/thoreinstein/stopcheck/internal/stop"
)

// Runner executes the check pipeline over a dataset.
type Runner struct {
	checks []Check
	fix    bool
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithFix enables fix mode: repairable findings mutate the record and
// are reported as informational instead of failing the row.
func WithFix(fix bool) Option {
	return func(r *Runner) {
		r.fix = fix
	}
}

// WithLogger sets the logger used for per-row tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a Runner with the standard check order, parameterized by
// the given rules.
func New(rs *rules.Rules, opts ...Option) *Runner {
	r := &Runner{
		checks: []Check{
			&completenessCheck{required: rs.RequiredFields},
			&coordinateCheck{},
			&dateOrderCheck{},
			&placeholderCheck{placeholder: rs.Placeholder},
			&linkShapeCheck{maxLen: rs.MaxLinkLength},
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	// Normalization runs last so repaired values are cleaned too.
	if r.fix {
		r.checks = append(r.checks, &normalizeCheck{})
	}
	return r
}

// Report aggregates the diagnostics of one validation run.
type Report struct {
	// Rows is the number of records examined.
	Rows int `json:"rows"`

	// Issues holds every diagnostic in row order.
	Issues []Issue `json:"issues"`

	// FailedRows lists the 1-based indexes of rows that failed.
	FailedRows []int `json:"failed_rows,omitempty"`

	// Fix records whether the run was a fix-mode run.
	Fix bool `json:"fix"`

	// OutputPath is where the repaired dataset was written, when it was.
	OutputPath string `json:"output_path,omitempty"`
}

// Passed reports whether every row passed.
func (r *Report) Passed() bool {
	return len(r.FailedRows) == 0
}

// MarshalJSON includes the derived verdict alongside the raw counts so
// machine consumers need not recompute it.
func (r *Report) MarshalJSON() ([]byte, error) {
	type alias Report
	return json.Marshal(struct {
		*alias
		Passed bool `json:"passed"`
	}{(*alias)(r), r.Passed()})
}

// Run applies every check to every record, in order, accumulating all
// diagnostics. Checks never short-circuit: a row that fails one check
// still runs the rest so every issue is reported. In fix mode records
// are mutated in place.
func (r *Runner) Run(ds stop.Dataset) *Report {
	report := &Report{
		Rows: len(ds),
		Fix:  r.fix,
	}

	for i, rec := range ds {
		row := i + 1
		rowOK := true

		for _, check := range r.checks {
			out := check.Run(rec, r.fix)
			for _, issue := range out.Issues {
				issue.Row = row
				report.Issues = append(report.Issues, issue)
			}
			if !out.Passed {
				rowOK = false
				r.logger.Debug("check failed", "row", row, "check", check.Name())
			}
		}

		if !rowOK {
			report.FailedRows = append(report.FailedRows, row)
		}
	}

	return report
}
