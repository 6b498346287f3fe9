package excel

import (
	"context"
	stderrors "errors"
	"testing"

	"irspec/domain/core"
	"irspec/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"a.csv", fileTypeDelimited, false},
		{"a.TSV", fileTypeDelimited, false},
		{"dir/a.txt", fileTypeDelimited, false},
		{"a.xlsx", fileTypeXLSX, false},
		{"a.xls", "", true},
		{"a.json", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFileType(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, stderrors.Is(err, core.ErrUnsupportedFileType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadTableCSV(t *testing.T) {
	dir := t.TempDir()
	path := testkit.WriteFile(t, dir, "ragged.csv", "wavenumber,A,B\n\n1000,0.1\n1100,0.2,0.3\n,,\n")

	table, err := NewDataReader(nil).ReadTable(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 4, table.Rows(), "the empty line is skipped, the ',,' row is kept")
	assert.Equal(t, 3, table.Cols())
	assert.Equal(t, "", table.Cell(1, 2))
	assert.Equal(t, "0.3", table.Cell(2, 2))
}

func TestReadTableTSVUsesCommaDelimiter(t *testing.T) {
	path := testkit.WriteFile(t, t.TempDir(), "tabbed.tsv", "1000\t0.1\n1100\t0.2\n")

	table, err := NewDataReader(nil).ReadTable(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Cols())
	assert.Equal(t, "1000\t0.1", table.Cell(0, 0))
}

func TestReadTableXLSXFirstSheet(t *testing.T) {
	rows := [][]string{{"wavenumber", "A"}, {"1000", "0.125"}, {"1100", "0.25"}}
	path := testkit.WriteXLSX(t, t.TempDir(), "book.xlsx", rows)

	table, err := NewDataReader(nil).ReadTable(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Rows())
	assert.Equal(t, "wavenumber", table.Cell(0, 0))
	assert.Equal(t, "1000", table.Cell(1, 0))
	assert.Equal(t, "0.25", table.Cell(2, 1))
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := NewDataReader(nil).ReadTable(context.Background(), "/nope/missing.csv")
	require.Error(t, err)
	assert.True(t, core.IsNotFoundError(err))
}

func TestReadTableUnsupported(t *testing.T) {
	path := testkit.WriteFile(t, t.TempDir(), "a.json", "{}")
	_, err := NewDataReader(nil).ReadTable(context.Background(), path)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, core.ErrUnsupportedFileType))
}
