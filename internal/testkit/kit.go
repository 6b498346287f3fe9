// Package testkit writes synthetic spectroscopy files for tests.
package testkit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Spectrum describes a synthetic single-material reading set
type Spectrum struct {
	Label       string
	Wavenumbers []float64
	Values      []float64
}

// LinearAxis returns n wavenumbers starting at start and stepping by step
func LinearAxis(n int, start, step float64) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = start + float64(i)*step
	}
	return axis
}

// Ramp returns n values evenly spaced from lo to hi inclusive
func Ramp(n int, lo, hi float64) []float64 {
	values := make([]float64, n)
	if n == 1 {
		values[0] = lo
		return values
	}
	step := (hi - lo) / float64(n-1)
	for i := range values {
		values[i] = lo + float64(i)*step
	}
	return values
}

// VerticalRows lays spectra out one material per column. Row 0 holds a
// header cell over the wavenumbers and each label; the rest hold readings.
// All spectra must share the first spectrum's wavenumbers.
func VerticalRows(header string, spectra ...Spectrum) [][]string {
	if len(spectra) == 0 {
		return nil
	}
	axis := spectra[0].Wavenumbers
	rows := make([][]string, 0, len(axis)+1)

	head := []string{header}
	for _, s := range spectra {
		head = append(head, s.Label)
	}
	rows = append(rows, head)

	for i, w := range axis {
		row := []string{FormatFloat(w)}
		for _, s := range spectra {
			row = append(row, FormatFloat(s.Values[i]))
		}
		rows = append(rows, row)
	}
	return rows
}

// Transpose flips a row-major grid, producing the horizontal layout
func Transpose(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	out := make([][]string, len(rows[0]))
	for c := range out {
		out[c] = make([]string, len(rows))
		for r := range rows {
			if c < len(rows[r]) {
				out[c][r] = rows[r][c]
			}
		}
	}
	return out
}

// FormatFloat renders v with the shortest exact representation
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes rows as comma-delimited text under dir and returns the path
func WriteCSV(tb testing.TB, dir, name string, rows [][]string) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(rows); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteXLSX writes rows to the first sheet of a new workbook. Cells that parse
// as numbers are stored as numbers, everything else as text.
func WriteXLSX(tb testing.TB, dir, name string, rows [][]string) string {
	tb.Helper()
	path := filepath.Join(dir, name)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for r, row := range rows {
		values := make([]interface{}, len(row))
		for c, cell := range row {
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				values[c] = v
			} else {
				values[c] = cell
			}
		}
		axis, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			tb.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, axis, &values); err != nil {
			tb.Fatalf("set row %d: %v", r, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		tb.Fatalf("save %s: %v", path, err)
	}
	return path
}

// WriteFile writes raw text, for formats the loader should reject
func WriteFile(tb testing.TB, dir, name, content string) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}
