package ingestion

import (
	"irspec/internal/errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// UnitHeuristic inspects the reading matrix and may rewrite it in place.
// It reports whether it changed anything.
type UnitHeuristic interface {
	Name() string
	Apply(readings *mat.Dense) (bool, error)
}

// DefaultHeuristics returns the percentage scaler followed by the
// transmittance converter, with their historical thresholds.
func DefaultHeuristics() []UnitHeuristic {
	return []UnitHeuristic{
		PercentScaler{Threshold: 2, Divisor: 100},
		TransmittanceConverter{Threshold: 0.5, Column: 0},
	}
}

// PercentScaler divides the whole matrix by Divisor when any value exceeds Threshold
type PercentScaler struct {
	Threshold float64
	Divisor   float64
}

func (PercentScaler) Name() string { return "percentage to fraction" }

func (p PercentScaler) Apply(readings *mat.Dense) (bool, error) {
	peak, err := stats.Max(readings.RawMatrix().Data)
	if err != nil {
		return false, err
	}
	if !(peak > p.Threshold) {
		return false, nil
	}
	readings.Apply(func(_, _ int, v float64) float64 { return v / p.Divisor }, readings)
	return true, nil
}

// TransmittanceConverter replaces every value v with 1-v when the mean of
// Column exceeds Threshold. Only that one column is inspected.
type TransmittanceConverter struct {
	Threshold float64
	Column    int
}

func (TransmittanceConverter) Name() string { return "transmittance to absorbance" }

func (t TransmittanceConverter) Apply(readings *mat.Dense) (bool, error) {
	if _, cols := readings.Dims(); t.Column < 0 || t.Column >= cols {
		return false, errors.InvalidInputf("transmittance check column %d outside %d reading columns", t.Column, cols)
	}
	mean, err := stats.Mean(mat.Col(nil, t.Column, readings))
	if err != nil {
		return false, err
	}
	if !(mean > t.Threshold) {
		return false, nil
	}
	readings.Apply(func(_, _ int, v float64) float64 { return 1 - v }, readings)
	return true, nil
}
