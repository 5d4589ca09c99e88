package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// execute runs the root command with the given arguments and returns
// the combined output. Package-level flag state is reset first so
// tests stay independent.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	validateFix = false
	validateInPlace = false
	validateJSON = false
	validateRules = ""
	statsJSON = false
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	cfg = nil
	configLoadErr = nil

	if args == nil {
		// SetArgs(nil) would fall back to os.Args.
		args = []string{}
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// goodStop is a fully valid record matching the default rules.
func goodStop() map[string]any {
	return map[string]any{
		"number":    1,
		"name":      "A",
		"lat":       45,
		"lon":       12,
		"arrival":   "2026-07-01",
		"departure": "2026-07-02",
		"duration":  "1 day",
		"distance":  "10 km",
		"type":      "Marina",
		"link":      "https://example.com",
		"season":    "summer",
	}
}

// writeDataset serializes records to a temp file and returns its path.
func writeDataset(t *testing.T, records ...map[string]any) string {
	t.Helper()

	data, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "stops.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
