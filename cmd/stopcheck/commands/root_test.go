package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootShowsHelp(t *testing.T) {
	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "stopcheck validates JSON datasets of travel stops")
	assert.Contains(t, out, "validate")
	assert.Contains(t, out, "stats")
}

func TestQuietAndVerboseConflict(t *testing.T) {
	path := writeDataset(t, goodStop())

	_, err := execute(t, "-q", "-v", "validate", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot use --quiet and --verbose together")
}

func TestValidateRequiresArgument(t *testing.T) {
	_, err := execute(t, "validate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}
