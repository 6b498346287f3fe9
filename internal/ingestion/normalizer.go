package ingestion

import (
	"fmt"

	"irspec/adapters/datareadiness/coercer"
	"irspec/domain/spectrum"
	"irspec/internal"
	"irspec/internal/errors"

	"gonum.org/v1/gonum/mat"
)

// normalized is the validated axis plus the numeric reading matrix
// (one row per wavenumber, one column per material).
type normalized struct {
	axis     spectrum.WavenumberAxis
	readings *mat.Dense
	filled   int
	applied  []string
}

// extractAxis coerces column 0, drops the label row and scales by the divisor.
// Cells that are not numbers stay NaN.
func extractAxis(table spectrum.RawTable, c *coercer.TypeCoercer) spectrum.WavenumberAxis {
	raw := c.CoerceColumn(table.Column(0))
	axis := make(spectrum.WavenumberAxis, 0, len(raw))
	for _, v := range raw[1:] {
		axis = append(axis, v/spectrum.WavenumberDivisor)
	}
	return axis
}

// validateAxis enforces the open band (395, 4005)/4000 and the point limit.
// NaN entries compare false and therefore pass.
func validateAxis(axis spectrum.WavenumberAxis) error {
	if len(axis) == 0 {
		return errors.InvalidInput("no wavenumbers found below the label row")
	}

	lo := spectrum.MinWavenumber / spectrum.WavenumberDivisor
	hi := spectrum.MaxWavenumber / spectrum.WavenumberDivisor
	for i, w := range axis {
		if w <= lo || w >= hi {
			return errors.OutOfRange(formatRangeMessage(i, w))
		}
	}

	if len(axis) > spectrum.PaddedLength {
		return errors.ResolutionTooHigh(formatResolutionMessage(len(axis)))
	}
	return nil
}

// normalize validates the axis, coerces readings and applies the unit heuristics
func normalize(table spectrum.RawTable, c *coercer.TypeCoercer, heuristics []UnitHeuristic, logger *internal.Logger) (*normalized, error) {
	if table.Rows() == 0 || table.Cols() == 0 {
		return nil, errors.InvalidInput("table is empty after dropping rows/columns")
	}

	axis := extractAxis(table, c)
	if err := validateAxis(axis); err != nil {
		return nil, err
	}

	logger.Info("Number readings: %d", len(axis))
	logger.Info("Padding length: %d", spectrum.PaddedLength-len(axis))

	materials := table.Cols() - 1
	if materials < 1 {
		return nil, errors.InvalidInput("no reading columns besides the wavenumber column")
	}

	readings := mat.NewDense(len(axis), materials, nil)
	filled := 0
	for col := 0; col < materials; col++ {
		values, n, err := c.FillColumn(table.Column(col + 1)[1:])
		if err != nil {
			return nil, errors.Wrapf(err, "reading column %d", col)
		}
		filled += n
		readings.SetCol(col, values)
	}
	if filled > 0 {
		logger.Debug("%d non-numeric reading cells coerced (%s)", filled, c.Config())
	}

	result := &normalized{axis: axis, readings: readings, filled: filled}
	for _, h := range heuristics {
		changed, err := h.Apply(readings)
		if err != nil {
			return nil, errors.Wrapf(err, "heuristic %s", h.Name())
		}
		if changed {
			logger.Info("%s detected and converted", h.Name())
			result.applied = append(result.applied, h.Name())
		} else {
			logger.Debug("%s: no conversion needed", h.Name())
		}
	}
	return result, nil
}

func formatRangeMessage(index int, w float64) string {
	return fmt.Sprintf("detected wavenumber %g at point %d out of range; check drop_columns, drop_rows and reading_format. "+
		"Acceptable wavenumbers range from 395 to 4005", w*spectrum.WavenumberDivisor, index)
}

func formatResolutionMessage(points int) string {
	return fmt.Sprintf("%d points per spectrum, at most %d are supported", points, spectrum.PaddedLength)
}
