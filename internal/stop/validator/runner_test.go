package validator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/thoreinstein/stopcheck/internal/logging"
	"github.com/thoreinstein/stopcheck/internal/rules"
	"github.com/thoreinstein/stopcheck/internal/stop"
)

func newRunner(t *testing.T, fix bool) *Runner {
	t.Helper()
	return New(rules.Default(), WithFix(fix), WithLogger(logging.ForTest(t)))
}

func TestRunner_ValidDataset(t *testing.T) {
	ds := stop.Dataset{validRecord(), validRecord()}

	report := newRunner(t, false).Run(ds)

	if !report.Passed() {
		t.Errorf("expected pass, issues: %+v", report.Issues)
	}
	if report.Rows != 2 {
		t.Errorf("Rows = %d, want 2", report.Rows)
	}
	if len(report.Issues) != 0 {
		t.Errorf("Issues = %+v, want none", report.Issues)
	}
}

func TestRunner_AllChecksRunPerRow(t *testing.T) {
	// One row failing several independent checks reports every issue;
	// no short-circuit after the first failure.
	rec := validRecord()
	rec["lat"] = json.Number("95")
	rec["arrival"] = "2026-07-05"
	rec["departure"] = "2026-07-01"
	rec["link"] = "User to research"
	delete(rec, "season")

	report := newRunner(t, false).Run(stop.Dataset{rec})

	if report.Passed() {
		t.Error("expected failure")
	}
	var all []string
	for _, i := range report.Issues {
		if i.Row != 1 {
			t.Errorf("issue row = %d, want 1", i.Row)
		}
		all = append(all, i.Message)
	}
	joined := strings.Join(all, "\n")
	for _, want := range []string{
		"missing fields: season",
		"lat out of range: 95",
		"arrival 2026-07-05 is after departure 2026-07-01",
		"placeholder in link field",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("diagnostics missing %q:\n%s", want, joined)
		}
	}
	if len(report.FailedRows) != 1 || report.FailedRows[0] != 1 {
		t.Errorf("FailedRows = %v, want [1]", report.FailedRows)
	}
}

func TestRunner_RowsAreIndependent(t *testing.T) {
	bad := validRecord()
	bad["lon"] = json.Number("200")

	report := newRunner(t, false).Run(stop.Dataset{validRecord(), bad, validRecord()})

	if len(report.FailedRows) != 1 || report.FailedRows[0] != 2 {
		t.Errorf("FailedRows = %v, want [2]", report.FailedRows)
	}
	for _, i := range report.Issues {
		if i.Row != 2 {
			t.Errorf("issue attributed to row %d, want 2", i.Row)
		}
	}
}

func TestRunner_FixRepairsInsteadOfFailing(t *testing.T) {
	rec := validRecord()
	rec["arrival"] = "2026-07-05"
	rec["departure"] = "2026-07-01"
	rec["link"] = "User to research"

	report := newRunner(t, true).Run(stop.Dataset{rec})

	if !report.Passed() {
		t.Errorf("repairable issues must not fail the row: %+v", report.Issues)
	}
	if rec["arrival"] != "2026-07-01" || rec["departure"] != "2026-07-05" {
		t.Errorf("dates not swapped: %v / %v", rec["arrival"], rec["departure"])
	}
	if rec["link"] != "" {
		t.Errorf("link = %q, want cleared", rec["link"])
	}
	if len(report.Issues) == 0 {
		t.Error("repairs should still be reported")
	}
}

func TestRunner_FixDoesNotMaskHardFailures(t *testing.T) {
	rec := validRecord()
	rec["lat"] = json.Number("95")

	report := newRunner(t, true).Run(stop.Dataset{rec})

	if report.Passed() {
		t.Error("out-of-range coordinates are not repairable")
	}
}

func TestRunner_FixIdempotent(t *testing.T) {
	rec := validRecord()
	rec["arrival"] = "2026-07-05"
	rec["departure"] = "2026-07-01"
	rec["name"] = " Vis \U0001F6A2"

	runner := newRunner(t, true)
	runner.Run(stop.Dataset{rec})

	// Second run over the repaired record changes nothing.
	before := make(stop.Record, len(rec))
	for k, v := range rec {
		before[k] = v
	}
	report := runner.Run(stop.Dataset{rec})

	if !report.Passed() {
		t.Errorf("second run failed: %+v", report.Issues)
	}
	if len(report.Issues) != 0 {
		t.Errorf("second run still reports repairs: %+v", report.Issues)
	}
	for k, v := range before {
		if rec[k] != v {
			t.Errorf("field %q changed on second run: %v -> %v", k, v, rec[k])
		}
	}
}

func TestRunner_EmptyDataset(t *testing.T) {
	report := newRunner(t, false).Run(stop.Dataset{})
	if !report.Passed() {
		t.Error("empty dataset passes vacuously")
	}
	if report.Rows != 0 {
		t.Errorf("Rows = %d, want 0", report.Rows)
	}
}

func TestRunner_CustomRules(t *testing.T) {
	rs := rules.Default()
	rs.RequiredFields = []string{"name"}
	rs.Placeholder = "TODO"

	rec := stop.Record{"name": "A", "link": "TODO: find one"}
	report := New(rs, WithLogger(logging.ForTest(t))).Run(stop.Dataset{rec})

	if report.Passed() {
		t.Error("custom placeholder should fail the row")
	}
	for _, i := range report.Issues {
		if strings.Contains(i.Message, "missing fields") {
			t.Errorf("unexpected completeness issue with custom fields: %s", i.Message)
		}
	}
}
