// Package ingestion turns one spectroscopy table into padded spectrum records.
//
// A file passes through four stages in order: load (with optional row or
// column exclusion), orient, validate/normalize and pack. Every failure is an
// *errors.AppError whose cause is one of the domain/core sentinels, so callers
// can branch with errors.Is.
package ingestion

import (
	"context"
	"path/filepath"

	"irspec/adapters/datareadiness/coercer"
	"irspec/adapters/excel"
	"irspec/domain/spectrum"
	"irspec/internal"
	"irspec/internal/errors"
	"irspec/ports"
)

// Ingester runs the single-file pipeline. It holds no per-call state and is
// safe for concurrent use.
type Ingester struct {
	reader ports.TableReader
	logger *internal.Logger
}

// NewIngester creates an ingester over the given reader. A nil logger discards diagnostics.
func NewIngester(reader ports.TableReader, logger *internal.Logger) *Ingester {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &Ingester{reader: reader, logger: logger}
}

// NewDefaultIngester reads files from disk with the CSV/XLSX reader
func NewDefaultIngester(logger *internal.Logger) *Ingester {
	return NewIngester(excel.NewDataReader(logger), logger)
}

// IngestFile reads path and returns one padded record per material column
func (i *Ingester) IngestFile(ctx context.Context, path string, opts Options) (spectrum.OutputCollection, error) {
	logger := i.logger.With("file", filepath.Base(path))

	table, err := i.reader.ReadTable(ctx, path)
	if err != nil {
		return nil, err
	}

	table, err = applyExclusions(table, opts, logger)
	if err != nil {
		return nil, err
	}

	table = orient(table, opts.ReadingFormat, logger)

	labels, err := resolveLabels(path, table, opts)
	if err != nil {
		return nil, err
	}

	norm, err := normalize(table, coercer.NewTypeCoercer(opts.Coercion), opts.heuristics(), logger)
	if err != nil {
		return nil, err
	}

	records, err := pack(norm.axis, norm.readings, labels)
	if err != nil {
		return nil, err
	}

	logger.Info("ingested %d spectra (%d readings each, padded to %d)", len(records), len(norm.axis), spectrum.PaddedLength)
	return records, nil
}

// IngestFile is a convenience wrapper using the default reader and no logging
func IngestFile(ctx context.Context, path string, opts Options) (spectrum.OutputCollection, error) {
	return NewDefaultIngester(nil).IngestFile(ctx, path, opts)
}

// IsUnsupportedFileType reports whether err came from an unknown extension
func IsUnsupportedFileType(err error) bool {
	return errors.GetCode(err) == errors.CodeUnsupportedFileType
}
