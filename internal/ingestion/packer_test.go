package ingestion

import (
	"testing"

	"irspec/domain/spectrum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPackPadsEveryRecord(t *testing.T) {
	axis := spectrum.WavenumberAxis{0.25, 0.5}
	readings := mat.NewDense(2, 3, []float64{
		0.1, 0.2, 0.3,
		0.4, 0.5, 0.6,
	})

	out, err := pack(axis, readings, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, []string{"a", "b", "c"}, out.Materials())
	for _, r := range out {
		assert.Len(t, r.Spectrum, spectrum.PaddedLength)
		assert.Equal(t, 2, r.RealPoints())
	}
	assert.Equal(t, spectrum.Pair{Wavenumber: 0.5, Intensity: 0.6}, out[2].Spectrum[1])
	assert.Equal(t, spectrum.Pair{}, out[2].Spectrum[2])
}

func TestPackExtraLabelsIgnored(t *testing.T) {
	readings := mat.NewDense(1, 1, []float64{0.3})
	out, err := pack(spectrum.WavenumberAxis{0.5}, readings, []string{"a", "unused"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, out.Materials())
}

func TestPackMissingLabel(t *testing.T) {
	readings := mat.NewDense(1, 2, []float64{0.3, 0.4})
	_, err := pack(spectrum.WavenumberAxis{0.5}, readings, []string{"a"})
	assert.Error(t, err)
}
