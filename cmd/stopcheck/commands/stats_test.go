package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsSummary(t *testing.T) {
	first := goodStop()
	second := goodStop()
	second["number"] = 2
	second["lat"] = 46
	second["distance"] = "12.5KM"
	second["arrival"] = "2026-07-02"
	second["departure"] = "2026-07-03"
	path := writeDataset(t, first, second)

	out, err := execute(t, "stats", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Records:           2")
	assert.Contains(t, out, "Latitude range:    45 to 46")
	assert.Contains(t, out, "Longitude range:   12 to 12")
	assert.Contains(t, out, "First arrival:     2026-07-01")
	assert.Contains(t, out, "Last departure:    2026-07-03")
	assert.Contains(t, out, "Declared distance: 22.5 km")
	// One degree of latitude is about 111.2 km along a great circle.
	assert.Contains(t, out, "Route distance:    111.2 km")
}

func TestStatsJSON(t *testing.T) {
	path := writeDataset(t, goodStop())

	out, err := execute(t, "stats", path, "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"records": 1`)
	assert.Contains(t, out, `"declared_distance_km": 10`)
	assert.Contains(t, out, `"first_arrival": "2026-07-01"`)
}

func TestStatsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	out, err := execute(t, "stats", path)

	require.Error(t, err)
	assert.Contains(t, out, "ERROR: file not found: "+path)
}

func TestStatsSkipsUnusableFields(t *testing.T) {
	rec := goodStop()
	rec["lat"] = "north"
	rec["arrival"] = "sometime in July"
	rec["distance"] = "a long way"
	path := writeDataset(t, rec)

	out, err := execute(t, "stats", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Records:           1")
	assert.NotContains(t, out, "Latitude range:")
	assert.NotContains(t, out, "First arrival:")
	assert.Contains(t, out, "Declared distance: 0.0 km")
}
