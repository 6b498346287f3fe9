package ingestion

import (
	"path/filepath"

	"irspec/domain/spectrum"
	"irspec/internal"
	"irspec/internal/errors"
)

// applyExclusions drops the requested columns, or failing that the requested
// rows. Only one of the two is ever applied.
func applyExclusions(table spectrum.RawTable, opts Options, logger *internal.Logger) (spectrum.RawTable, error) {
	switch {
	case opts.DropColumns != nil:
		if opts.DropRows != nil {
			logger.Warn("both drop_columns and drop_rows given; only columns are dropped")
		}
		dropped, err := table.DropColumns(opts.DropColumns)
		if err != nil {
			return spectrum.RawTable{}, errors.InvalidInput(err.Error())
		}
		return dropped, nil
	case opts.DropRows != nil:
		dropped, err := table.DropRows(opts.DropRows)
		if err != nil {
			return spectrum.RawTable{}, errors.InvalidInput(err.Error())
		}
		return dropped, nil
	default:
		return table, nil
	}
}

// orient returns the table with wavenumbers in column 0 and one material per
// remaining column. An unknown format is logged and treated as vertical.
func orient(table spectrum.RawTable, format spectrum.ReadingFormat, logger *internal.Logger) spectrum.RawTable {
	if format != "" && !format.IsKnown() {
		logger.Warn("unknown reading_format %q: pass 'horizontal' if one material corresponds to one row, "+
			"'vertical' if one material corresponds to one column; continuing as vertical", format)
		return table
	}
	if format == spectrum.FormatHorizontal {
		logger.Info("data transposed to vertical format")
		return table.Transpose()
	}
	logger.Info("vertical format given")
	return table
}

// resolveLabels picks the material labels for the oriented table
func resolveLabels(path string, table spectrum.RawTable, opts Options) ([]string, error) {
	switch {
	case opts.NumSpectra == 1:
		if opts.Material.IsUnset() {
			return []string{filepath.Base(path)}, nil
		}
		if label, ok := opts.Material.Single(); ok {
			return []string{label}, nil
		}
		return nil, errors.InvalidInput("for a single spectrum, material should be unset or a single label; " +
			"the file name is used by default")

	case opts.NumSpectra > 1:
		if opts.Material.IsUnset() {
			return headerLabels(table, opts.LabelPolicy), nil
		}
		if labels, ok := opts.Material.List(); ok {
			return labels, nil
		}
		return nil, errors.InvalidInput("for multiple spectra, material should be unset or a list of labels; " +
			"after dropping rows/columns the first remaining row/column is used by default")

	default:
		return nil, errors.InvalidInputf("num_spectra must be an integer >= 1, got %d", opts.NumSpectra)
	}
}

// headerLabels derives labels from row 0. The legacy policy derives none.
func headerLabels(table spectrum.RawTable, policy LabelPolicy) []string {
	if policy != LabelPolicyHeaderRow || table.Rows() == 0 || table.Cols() == 0 {
		return []string{}
	}
	row := table.Row(0)
	return row[1:]
}
