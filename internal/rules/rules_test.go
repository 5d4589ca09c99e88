package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/stopcheck/internal/errors"
	"github.com/thoreinstein/stopcheck/internal/stop"
)

func TestDefault(t *testing.T) {
	r := Default()

	if r.MaxLinkLength != 200 {
		t.Errorf("MaxLinkLength = %d, want 200", r.MaxLinkLength)
	}
	if r.Placeholder != "User to research" {
		t.Errorf("Placeholder = %q", r.Placeholder)
	}
	if len(r.RequiredFields) != len(stop.RequiredFields) {
		t.Errorf("RequiredFields = %v", r.RequiredFields)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("default rules should validate: %v", err)
	}
}

func TestDefault_IsACopy(t *testing.T) {
	r := Default()
	r.RequiredFields[0] = "mutated"
	if stop.RequiredFields[0] == "mutated" {
		t.Error("Default must not alias the canonical field list")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	content := `
max_link_length = 500
required_fields = ["name", "lat", "lon"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.MaxLinkLength != 500 {
		t.Errorf("MaxLinkLength = %d, want 500", r.MaxLinkLength)
	}
	if len(r.RequiredFields) != 3 {
		t.Errorf("RequiredFields = %v", r.RequiredFields)
	}
	// Keys absent from the file keep their defaults.
	if r.Placeholder != DefaultPlaceholder {
		t.Errorf("Placeholder = %q, want default", r.Placeholder)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrInvalidRules) {
		t.Errorf("error = %v, want ErrInvalidRules", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, []byte("max_link_length = [["), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, errors.ErrInvalidRules) {
		t.Errorf("error = %v, want ErrInvalidRules", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Rules)
		wantErr bool
	}{
		{"defaults", func(*Rules) {}, false},
		{"empty required fields", func(r *Rules) { r.RequiredFields = nil }, true},
		{"empty field name", func(r *Rules) { r.RequiredFields = []string{"name", ""} }, true},
		{"duplicate field", func(r *Rules) { r.RequiredFields = []string{"name", "name"} }, true},
		{"zero link length", func(r *Rules) { r.MaxLinkLength = 0 }, true},
		{"negative link length", func(r *Rules) { r.MaxLinkLength = -1 }, true},
		{"empty placeholder", func(r *Rules) { r.Placeholder = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Default()
			tt.mutate(r)
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
