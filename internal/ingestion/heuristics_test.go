package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPercentScalerUsesGlobalMax(t *testing.T) {
	// Only the second column looks like a percentage, yet both are scaled.
	m := mat.NewDense(2, 2, []float64{
		0.1, 40,
		0.2, 60,
	})
	changed, err := PercentScaler{Threshold: 2, Divisor: 100}.Apply(m)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.InDelta(t, 0.001, m.At(0, 0), 1e-15)
	assert.InDelta(t, 0.6, m.At(1, 1), 1e-15)
}

func TestPercentScalerThresholdIsStrict(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{2, 1})
	changed, err := PercentScaler{Threshold: 2, Divisor: 100}.Apply(m)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 2.0, m.At(0, 0))
}

func TestTransmittanceConverterInspectsOneColumn(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		0.8, 0.1,
		0.9, 0.2,
	})
	changed, err := TransmittanceConverter{Threshold: 0.5, Column: 0}.Apply(m)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.InDelta(t, 0.2, m.At(0, 0), 1e-12)
	assert.InDelta(t, 0.9, m.At(0, 1), 1e-12)
	assert.InDelta(t, 0.8, m.At(1, 1), 1e-12)

	// The low second column alone does not trigger a conversion.
	low := mat.NewDense(2, 2, []float64{
		0.1, 0.9,
		0.2, 0.9,
	})
	changed, err = TransmittanceConverter{Threshold: 0.5, Column: 0}.Apply(low)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestTransmittanceConverterMeanAtThreshold(t *testing.T) {
	m := mat.NewDense(2, 1, []float64{0.25, 0.75})
	changed, err := TransmittanceConverter{Threshold: 0.5}.Apply(m)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestTransmittanceConverterBadColumn(t *testing.T) {
	m := mat.NewDense(1, 1, []float64{0.9})
	_, err := TransmittanceConverter{Threshold: 0.5, Column: 3}.Apply(m)
	assert.Error(t, err)
}

func TestDefaultHeuristicsOrder(t *testing.T) {
	h := DefaultHeuristics()
	require.Len(t, h, 2)
	assert.Equal(t, "percentage to fraction", h[0].Name())
	assert.Equal(t, "transmittance to absorbance", h[1].Name())
}
