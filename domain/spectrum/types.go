// Package spectrum holds the data model shared by the loader, the ingestion
// stages and their callers.
package spectrum

import (
	"encoding/json"
	"fmt"
	"sort"

	"irspec/domain/core"
)

const (
	// PaddedLength is the fixed number of pairs in every SpectrumRecord.
	PaddedLength = 4000
	// WavenumberDivisor scales raw wavenumbers (cm^-1) into the unit interval.
	WavenumberDivisor = 4000.0
	// MinWavenumber and MaxWavenumber bound the accepted band, both exclusive.
	MinWavenumber = 395.0
	MaxWavenumber = 4005.0
)

// ReadingFormat says whether one material occupies a column or a row of the input
type ReadingFormat string

const (
	// FormatVertical means one material per column; the default.
	FormatVertical ReadingFormat = "vertical"
	// FormatHorizontal means one material per row; the table is transposed.
	FormatHorizontal ReadingFormat = "horizontal"
)

// IsKnown reports whether f is one of the two supported layouts
func (f ReadingFormat) IsKnown() bool {
	return f == FormatVertical || f == FormatHorizontal
}

// RawTable is a headerless grid of cell text. Rows are always the same width.
type RawTable struct {
	cells [][]string
}

// NewRawTable builds a table, padding ragged rows with empty cells
func NewRawTable(rows [][]string) RawTable {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, width)
		copy(cells[i], row)
	}
	return RawTable{cells: cells}
}

// Rows returns the number of rows
func (t RawTable) Rows() int { return len(t.cells) }

// Cols returns the number of columns
func (t RawTable) Cols() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Cell returns the text at (r, c)
func (t RawTable) Cell(r, c int) string { return t.cells[r][c] }

// Row returns a copy of row r
func (t RawTable) Row(r int) []string {
	out := make([]string, t.Cols())
	copy(out, t.cells[r])
	return out
}

// Column returns a copy of column c
func (t RawTable) Column(c int) []string {
	out := make([]string, t.Rows())
	for r := range t.cells {
		out[r] = t.cells[r][c]
	}
	return out
}

// Transpose swaps rows and columns
func (t RawTable) Transpose() RawTable {
	rows, cols := t.Rows(), t.Cols()
	cells := make([][]string, cols)
	for c := 0; c < cols; c++ {
		cells[c] = make([]string, rows)
		for r := 0; r < rows; r++ {
			cells[c][r] = t.cells[r][c]
		}
	}
	return RawTable{cells: cells}
}

// DropColumns removes the given column indices and reindexes the rest from 0.
// An index outside the table is an error; a repeated index drops the column once.
func (t RawTable) DropColumns(indices []int) (RawTable, error) {
	drop, err := indexSet(indices, t.Cols(), "column")
	if err != nil {
		return RawTable{}, err
	}
	cells := make([][]string, t.Rows())
	for r, row := range t.cells {
		kept := make([]string, 0, len(row)-len(drop))
		for c, cell := range row {
			if !drop[c] {
				kept = append(kept, cell)
			}
		}
		cells[r] = kept
	}
	return RawTable{cells: cells}, nil
}

// DropRows removes the given row indices and reindexes the rest from 0.
func (t RawTable) DropRows(indices []int) (RawTable, error) {
	drop, err := indexSet(indices, t.Rows(), "row")
	if err != nil {
		return RawTable{}, err
	}
	cells := make([][]string, 0, t.Rows()-len(drop))
	for r, row := range t.cells {
		if !drop[r] {
			cells = append(cells, append([]string(nil), row...))
		}
	}
	return RawTable{cells: cells}, nil
}

func indexSet(indices []int, limit int, axis string) (map[int]bool, error) {
	set := make(map[int]bool, len(indices))
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	for _, idx := range sorted {
		if idx < 0 || idx >= limit {
			return nil, fmt.Errorf("%w: %s index %d not found (table has %d)", core.ErrInvalidArgument, axis, idx, limit)
		}
		set[idx] = true
	}
	return set, nil
}

// WavenumberAxis is the ordered, scaled x-axis of one file
type WavenumberAxis []float64

// Pair is one (scaled wavenumber, intensity) point
type Pair struct {
	Wavenumber float64
	Intensity  float64
}

// IsSentinel reports whether p is a (0,0) padding pair
func (p Pair) IsSentinel() bool {
	return p.Wavenumber == 0 && p.Intensity == 0
}

// MarshalJSON encodes a pair as a two-element array
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Wavenumber, p.Intensity})
}

// UnmarshalJSON decodes a two-element array
func (p *Pair) UnmarshalJSON(data []byte) error {
	var v [2]float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.Wavenumber, p.Intensity = v[0], v[1]
	return nil
}

// SpectrumRecord is one material's padded spectrum
type SpectrumRecord struct {
	Material string `json:"material"`
	Spectrum []Pair `json:"spectrum"`
}

// RealPoints counts the leading pairs that carry data. Real wavenumbers are
// never zero because of the band check, so the first zero marks the padding.
func (r SpectrumRecord) RealPoints() int {
	for i, p := range r.Spectrum {
		if p.Wavenumber == 0 {
			return i
		}
	}
	return len(r.Spectrum)
}

// OutputCollection stacks records, one per material
type OutputCollection []SpectrumRecord

// Concat appends other after c
func (c OutputCollection) Concat(other OutputCollection) OutputCollection {
	out := make(OutputCollection, 0, len(c)+len(other))
	out = append(out, c...)
	return append(out, other...)
}

// Materials lists the record labels in order
func (c OutputCollection) Materials() []string {
	out := make([]string, len(c))
	for i, r := range c {
		out[i] = r.Material
	}
	return out
}
