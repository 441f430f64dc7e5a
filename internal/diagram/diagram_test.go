package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Girder/internal/analysis"
)

func pngWritten(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func testSamples() []analysis.Sample {
	return []analysis.Sample{
		{X: 0, Shear: 7, Moment: 0},
		{X: 3, Shear: 7, Moment: 21},
		{X: 3.000001, Shear: -3, Moment: 21},
		{X: 10, Shear: -3, Moment: 0},
	}
}

func TestSaveShear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shear.png")
	require.NoError(t, SaveShear(testSamples(), path))
	pngWritten(t, path)
}

func TestSaveMoment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moment.png")
	require.NoError(t, SaveMoment(testSamples(), path))
	pngWritten(t, path)
}

func TestSaveShear_NonFiniteFilteredNotFatal(t *testing.T) {
	samples := []analysis.Sample{
		{X: 0, Shear: math.NaN(), Moment: 0},
		{X: 1, Shear: math.Inf(1), Moment: 0},
	}
	path := filepath.Join(t.TempDir(), "shear.png")
	require.NoError(t, SaveShear(samples, path))
	pngWritten(t, path)
}

func TestSaveShear_EmptySeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shear.png")
	require.NoError(t, SaveShear(nil, path))
	pngWritten(t, path)
}

func TestSaveDefaultBeam(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam.png")
	require.NoError(t, SaveDefaultBeam(path))
	pngWritten(t, path)
}

func TestASCII(t *testing.T) {
	shear := ASCIIShear(testSamples())
	moment := ASCIIMoment(testSamples())

	assert.True(t, strings.Contains(shear, "Shear"))
	assert.True(t, strings.Contains(moment, "Moment"))
}

func TestASCII_AllNonFinite(t *testing.T) {
	samples := []analysis.Sample{{X: 0, Shear: math.NaN(), Moment: math.NaN()}}
	assert.Equal(t, "(no finite shear values)", ASCIIShear(samples))
	assert.Equal(t, "(no finite moment values)", ASCIIMoment(samples))
}
