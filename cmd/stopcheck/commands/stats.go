package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/stopcheck/internal/errors"
	"github.com/thoreinstein/stopcheck/internal/stats"
	"github.com/thoreinstein/stopcheck/internal/stop"
)

var statsJSON bool

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false,
		"output the summary as JSON")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats <path>",
	Short: "Summarize a stop dataset",
	Long: `Print a read-only summary of a stop dataset: record count,
coordinate bounding box, date span, declared distance, and the
great-circle length of the stop sequence.

The dataset is never modified. Fields that cannot be interpreted
(unparsable dates, out-of-range coordinates, non-numeric distances)
are skipped rather than reported; use 'stopcheck validate' to find
them.

Examples:
  # Human-readable summary
  stopcheck stats stops.json

  # Machine-readable summary
  stopcheck stats stops.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(args[0], cmd.OutOrStdout())
	},
}

func runStats(path string, w io.Writer) error {
	ds, err := stop.Load(path)
	if err != nil {
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

	summary := stats.Summarize(ds)

	if statsJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(summary), "encoding summary")
	}

	fmt.Fprintf(w, "Records:           %d\n", summary.Records)
	if summary.Bounds != nil {
		fmt.Fprintf(w, "Latitude range:    %g to %g\n", summary.Bounds.MinLat, summary.Bounds.MaxLat)
		fmt.Fprintf(w, "Longitude range:   %g to %g\n", summary.Bounds.MinLon, summary.Bounds.MaxLon)
	}
	if summary.FirstArrival != "" {
		fmt.Fprintf(w, "First arrival:     %s\n", summary.FirstArrival)
	}
	if summary.LastDeparture != "" {
		fmt.Fprintf(w, "Last departure:    %s\n", summary.LastDeparture)
	}
	fmt.Fprintf(w, "Declared distance: %.1f km\n", summary.DeclaredDistanceKm)
	fmt.Fprintf(w, "Route distance:    %.1f km\n", summary.RouteDistanceKm)
	return nil
}
