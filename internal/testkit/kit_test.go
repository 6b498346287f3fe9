package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRampAndAxis(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, Ramp(3, 0, 1))
	assert.Equal(t, []float64{7}, Ramp(1, 7, 9))
	assert.Equal(t, []float64{400, 410, 420}, LinearAxis(3, 400, 10))
}

func TestVerticalRowsAndTranspose(t *testing.T) {
	rows := VerticalRows("wn", Spectrum{Label: "a", Wavenumbers: []float64{500, 600}, Values: []float64{0.1, 0.2}})
	assert.Equal(t, [][]string{{"wn", "a"}, {"500", "0.1"}, {"600", "0.2"}}, rows)
	assert.Equal(t, [][]string{{"wn", "500", "600"}, {"a", "0.1", "0.2"}}, Transpose(rows))
	assert.Nil(t, VerticalRows("wn"))
}
