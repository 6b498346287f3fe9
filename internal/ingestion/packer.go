package ingestion

import (
	"irspec/domain/spectrum"
	"irspec/internal/errors"

	"gonum.org/v1/gonum/mat"
)

// pack zips the axis with each reading column and pads to PaddedLength
func pack(axis spectrum.WavenumberAxis, readings *mat.Dense, labels []string) (spectrum.OutputCollection, error) {
	_, materials := readings.Dims()
	out := make(spectrum.OutputCollection, 0, materials)

	for col := 0; col < materials; col++ {
		if col >= len(labels) {
			return nil, errors.InvalidInputf("no material label for reading column %d (%d labels for %d columns)",
				col, len(labels), materials)
		}
		out = append(out, spectrum.SpectrumRecord{
			Material: labels[col],
			Spectrum: padPairs(axis, mat.Col(nil, col, readings)),
		})
	}
	return out, nil
}

// padPairs pairs axis[i] with values[i] and appends (0,0) up to PaddedLength
func padPairs(axis spectrum.WavenumberAxis, values []float64) []spectrum.Pair {
	pairs := make([]spectrum.Pair, spectrum.PaddedLength)
	for i, w := range axis {
		pairs[i] = spectrum.Pair{Wavenumber: w, Intensity: values[i]}
	}
	return pairs
}
