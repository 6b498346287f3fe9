package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"irspec/domain/spectrum"
	"irspec/internal"
	"irspec/internal/errors"

	"github.com/xuri/excelize/v2"
)

// File types the reader knows how to parse
const (
	fileTypeDelimited = "delimited"
	fileTypeXLSX      = "xlsx"
)

// DataReader reads delimited text and Excel workbooks into a headerless RawTable
type DataReader struct {
	logger *internal.Logger
}

// NewDataReader creates a reader that handles both Excel and delimited files
func NewDataReader(logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &DataReader{logger: logger}
}

// DetectFileType maps a path's extension onto a parser. Unsupported
// extensions return an UNSUPPORTED_FILE_TYPE error.
func DetectFileType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv", ".tsv", ".txt":
		return fileTypeDelimited, nil
	case ".xlsx":
		return fileTypeXLSX, nil
	default:
		return "", errors.UnsupportedFileType(ext)
	}
}

// ReadTable reads the file at path. Every cell is kept as text and blank
// lines are skipped; no row is treated as a header.
func (r *DataReader) ReadTable(ctx context.Context, path string) (spectrum.RawTable, error) {
	fileType, err := DetectFileType(path)
	if err != nil {
		return spectrum.RawTable{}, err
	}
	if err := ctx.Err(); err != nil {
		return spectrum.RawTable{}, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return spectrum.RawTable{}, errors.NotFound(fmt.Sprintf("file %s", path))
	}

	r.logger.Debug("[DataReader] file type: %s", strings.ToLower(filepath.Ext(path)))

	var rows [][]string
	switch fileType {
	case fileTypeDelimited:
		r.logger.Info("[DataReader] .csv, .tsv, or .txt file detected")
		rows, err = r.readDelimited(path)
	case fileTypeXLSX:
		r.logger.Info("[DataReader] .xlsx file detected - only the first sheet will be ingested")
		rows, err = r.readWorkbook(path)
	}
	if err != nil {
		return spectrum.RawTable{}, err
	}

	table := spectrum.NewRawTable(rows)
	r.logger.Debug("[DataReader] %s read (%d rows, %d columns)", filepath.Base(path), table.Rows(), table.Cols())
	return table, nil
}

// readDelimited parses comma-delimited text. .tsv and .txt go through the
// same parser; there is no delimiter detection.
func (r *DataReader) readDelimited(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	return r.parseDelimited(file, path)
}

func (r *DataReader) parseDelimited(src io.Reader, path string) ([][]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read delimited file %s", path)
	}
	r.logger.Debug("[DataReader] delimited file read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return skipBlankRows(rows), nil
}

// readWorkbook reads the first sheet of an .xlsx workbook using raw cell
// values so number formats do not leak into the text.
func (r *DataReader) readWorkbook(path string) ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InvalidInputf("workbook %s has no sheets", path)
	}
	if len(sheets) > 1 {
		r.logger.Warn("[DataReader] %s has %d sheets, ignoring all but %q", filepath.Base(path), len(sheets), sheets[0])
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	r.logger.Debug("[DataReader] sheet %s read in %.2fms (%d rows)",
		sheets[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return skipBlankRows(rows), nil
}

// skipBlankRows drops rows with no cells at all. A row of empty cells such as
// ",," is kept and later coerced like any other missing value.
func skipBlankRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		if len(row) > 0 {
			out = append(out, row)
		}
	}
	return out
}
