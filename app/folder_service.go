package app

import (
	"context"
	"path/filepath"
	"sort"

	"irspec/domain/core"
	"irspec/domain/spectrum"
	"irspec/internal"
	"irspec/internal/errors"
	"irspec/internal/ingestion"

	"golang.org/x/sync/errgroup"
)

// FileIngester ingests one file; *ingestion.Ingester satisfies it
type FileIngester interface {
	IngestFile(ctx context.Context, path string, opts ingestion.Options) (spectrum.OutputCollection, error)
}

// FolderService ingests every file matching a glob pattern
type FolderService struct {
	ingester FileIngester
	logger   *internal.Logger
}

// FolderOptions configures a batch. File applies to every file except for
// Material, which comes from Materials[i] when Materials is set.
type FolderOptions struct {
	File      ingestion.Options
	Materials []spectrum.Material
	// Workers bounds concurrent ingestions; values below 1 mean 1.
	Workers int
	// FailFast aborts the batch at the first failing file.
	FailFast bool
}

// FileResult is the outcome for one matched file
type FileResult struct {
	Path    string                    `json:"path"`
	Records spectrum.OutputCollection `json:"records,omitempty"`
	Err     error                     `json:"-"`
	Skipped bool                      `json:"skipped,omitempty"`
}

// OK reports whether the file was ingested
func (r FileResult) OK() bool {
	return !r.Skipped && r.Err == nil
}

// Rejected reports whether the file was read but its contents failed
// validation, as opposed to an I/O or type failure.
func (r FileResult) Rejected() bool {
	return core.IsValidationError(r.Err)
}

// BatchReport collects per-file results in sorted path order
type BatchReport struct {
	RunID      core.RunID                `json:"run_id"`
	Pattern    string                    `json:"pattern"`
	Files      []FileResult              `json:"files"`
	Records    spectrum.OutputCollection `json:"-"`
	StartedAt  core.Timestamp            `json:"-"`
	DurationMs int64                     `json:"duration_ms"`
}

// Failed returns the results that ended in an error
func (r *BatchReport) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Rejected returns the failures caused by invalid file contents
func (r *BatchReport) Rejected() []FileResult {
	var rejected []FileResult
	for _, f := range r.Files {
		if f.Rejected() {
			rejected = append(rejected, f)
		}
	}
	return rejected
}

// Succeeded counts ingested files
func (r *BatchReport) Succeeded() int {
	n := 0
	for _, f := range r.Files {
		if f.OK() {
			n++
		}
	}
	return n
}

// NewFolderService creates a batch service. A nil logger discards diagnostics.
func NewFolderService(ingester FileIngester, logger *internal.Logger) *FolderService {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &FolderService{ingester: ingester, logger: logger}
}

// ExpandPattern returns the files matching pattern in lexical order
func ExpandPattern(pattern string) ([]string, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.InvalidInputf("bad glob pattern %q: %v", pattern, err)
	}
	if len(paths) == 0 {
		return nil, errors.NotFound("no files match " + pattern)
	}
	sort.Strings(paths)
	return paths, nil
}

// IngestFolder ingests every file matching pattern. Failures are recorded per
// file and the batch carries on unless FailFast is set; the returned error is
// only non-nil for a bad request or a fail-fast abort. Records are
// concatenated in path order whatever the worker count.
func (s *FolderService) IngestFolder(ctx context.Context, pattern string, opts FolderOptions) (*BatchReport, error) {
	paths, err := ExpandPattern(pattern)
	if err != nil {
		return nil, err
	}
	if opts.Materials != nil && len(opts.Materials) != len(paths) {
		return nil, errors.InvalidInputf("material list has %d entries but %d files match %s",
			len(opts.Materials), len(paths), pattern)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	report := &BatchReport{
		RunID:     core.NewRunID(),
		Pattern:   pattern,
		Files:     make([]FileResult, len(paths)),
		StartedAt: core.Now(),
	}
	logger := s.logger.With("run_id", report.RunID.String())
	logger.Info("ingesting %d files matching %s with %d worker(s)", len(paths), pattern, workers)

	for i, path := range paths {
		report.Files[i] = FileResult{Path: path, Skipped: true}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, path := range paths {
		if egCtx.Err() != nil {
			break
		}
		fileOpts := opts.File
		if opts.Materials != nil {
			fileOpts.Material = opts.Materials[i]
		}
		eg.Go(func() error {
			if egCtx.Err() != nil {
				return nil
			}
			records, err := s.ingester.IngestFile(egCtx, path, fileOpts)
			report.Files[i] = FileResult{Path: path, Records: records, Err: err}
			if err != nil {
				logger.Warn("%s failed: %v", filepath.Base(path), err)
				if opts.FailFast {
					return errors.Wrapf(err, "ingest %s", path)
				}
			}
			return nil
		})
	}
	waitErr := eg.Wait()

	for _, f := range report.Files {
		if f.OK() {
			report.Records = report.Records.Concat(f.Records)
		}
	}
	report.DurationMs = report.StartedAt.Since().Milliseconds()
	logger.Info("batch done: %d ok, %d failed (%d rejected), %d records in %dms",
		report.Succeeded(), len(report.Failed()), len(report.Rejected()), len(report.Records), report.DurationMs)

	if waitErr != nil {
		return report, waitErr
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}
