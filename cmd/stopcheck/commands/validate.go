package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/stopcheck/internal/errors"
	"github.com/thoreinstein/stopcheck/internal/logging"
	"github.com/thoreinstein/stopcheck/internal/paths"
	"github.com/thoreinstein/stopcheck/internal/rules"
	"github.com/thoreinstein/stopcheck/internal/stop"
	"github.com/thoreinstein/stopcheck/internal/stop/validator"
)

var (
	validateFix     bool
	validateInPlace bool
	validateJSON    bool
	validateRules   string
)

func init() {
	validateCmd.Flags().BoolVar(&validateFix, "fix", false,
		"attempt to fix issues and write the cleaned dataset")
	validateCmd.Flags().BoolVar(&validateInPlace, "in-place", false,
		"overwrite the input file when fixing (requires --fix)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output the report as JSON")
	validateCmd.Flags().StringVar(&validateRules, "rules", "",
		"path to a TOML rules file overriding the built-in checks")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a stop dataset",
	Long: `Validate a JSON stop dataset for completeness, coordinate ranges,
date ordering, and placeholder or malformed link content.

Every check runs on every row, so one diagnostic line is printed per
issue found. With --fix, repairable issues (inverted dates, placeholder
links, stray whitespace and emoji) are corrected and the cleaned
dataset is written to <stem>.fixed<ext>, or back to the input file
with --in-place.

Exit codes:
  0 - Every row passed (repairs in fix mode count as passed)
  1 - Unresolved issues, missing file, or malformed input

Examples:
  # Validate only
  stopcheck validate stops.json

  # Repair into stops.fixed.json
  stopcheck validate stops.json --fix

  # Repair the file in place
  stopcheck validate stops.json --fix --in-place

  # Machine-readable report for CI
  stopcheck validate stops.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if validateInPlace && !validateFix {
			return errors.NewUserError(errors.New("--in-place requires --fix"),
				"Add --fix to repair the dataset before writing it back")
		}
		return runValidate(cmd, args[0], cmd.OutOrStdout())
	},
}

func runValidate(cmd *cobra.Command, path string, w io.Writer) error {
	logger := logging.FromContext(cmd.Context())

	rs, err := effectiveRules()
	if err != nil {
		fmt.Fprintf(w, "ERROR: %v\n", err)
		return errors.NewExitError(err, errors.ExitUser)
	}

	ds, err := stop.Load(path)
	if err != nil {
		// Input errors abort before any row processing.
		switch {
		case errors.Is(err, errors.ErrFileNotFound):
			fmt.Fprintf(w, "ERROR: file not found: %s\n", path)
		case errors.Is(err, errors.ErrNotAList):
			fmt.Fprintln(w, "ERROR: top-level JSON is not a list")
		default:
			fmt.Fprintf(w, "ERROR: %v\n", err)
		}
		return errors.NewExitError(err, errors.ExitUser)
	}

	logger.Debug("dataset loaded", "path", path, "rows", len(ds))

	runner := validator.New(rs,
		validator.WithFix(validateFix),
		validator.WithLogger(logger))
	report := runner.Run(ds)

	if validateFix && len(ds) > 0 {
		outPath := path
		if !validateInPlace {
			outPath = paths.FixedPath(path)
		}
		if err := ds.Write(outPath); err != nil {
			return errors.NewSystemError(err, "Could not write the cleaned dataset")
		}
		report.OutputPath = outPath
	}

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(w, format).Report(report); err != nil {
		return errors.NewSystemError(err, "")
	}

	if !report.Passed() {
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}
	return nil
}

// effectiveRules resolves the validation rules: the --rules flag wins,
// then a rules_file from the config, then the config values themselves.
func effectiveRules() (*rules.Rules, error) {
	if validateRules != "" {
		return rules.Load(validateRules)
	}
	if cfg != nil && cfg.RulesFile != "" {
		return rules.Load(cfg.RulesFile)
	}
	if cfg != nil {
		return cfg.Rules()
	}
	return rules.Default(), nil
}
