package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"irspec/adapters/datareadiness/coercer"
	"irspec/app"
	"irspec/domain/spectrum"
	"irspec/internal"
	"irspec/internal/config"
	"irspec/internal/ingestion"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
)

// ingestFlags holds command-line overrides for the configured defaults
type ingestFlags struct {
	format       string
	numSpectra   int
	materials    []string
	dropColumns  []int
	dropRows     []int
	labelPolicy  string
	missing      string
	noHeuristics bool
	jsonOutput   bool
	workers      int
	failFast     bool
}

func newRootCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "irspec",
		Short:         "Normalize infrared spectra from CSV/XLSX files into fixed-length records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newFileCmd(cfg, logger),
		newFolderCmd(cfg, logger),
	)
	return rootCmd
}

func bindIngestFlags(cmd *cobra.Command, cfg *config.Config, f *ingestFlags) {
	cmd.Flags().StringVar(&f.format, "format", string(cfg.Ingest.ReadingFormat), "Reading format: vertical (one material per column) or horizontal")
	cmd.Flags().IntVar(&f.numSpectra, "num-spectra", cfg.Ingest.NumSpectra, "Number of spectra per file")
	cmd.Flags().StringArrayVar(&f.materials, "material", nil, "Material label (repeat for several)")
	cmd.Flags().IntSliceVar(&f.dropColumns, "drop-columns", nil, "Column indices to drop before orienting (takes precedence over --drop-rows)")
	cmd.Flags().IntSliceVar(&f.dropRows, "drop-rows", nil, "Row indices to drop before orienting")
	cmd.Flags().StringVar(&f.labelPolicy, "label-policy", string(cfg.Ingest.LabelPolicy), "Label derivation for multi-spectrum files: legacy or header-row")
	cmd.Flags().StringVar(&f.missing, "missing", string(cfg.Ingest.MissingPolicy), "Non-numeric readings: fill or reject")
	cmd.Flags().BoolVar(&f.noHeuristics, "no-heuristics", cfg.Ingest.DisableHeuristics, "Disable percentage and transmittance conversions")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Print the full output collection as JSON")
}

// options merges flags over the configured defaults
func (f *ingestFlags) options(cmd *cobra.Command, cfg *config.Config) ingestion.Options {
	opts := cfg.IngestOptions()
	opts.ReadingFormat = spectrum.ReadingFormat(f.format)
	opts.NumSpectra = f.numSpectra
	opts.LabelPolicy = ingestion.LabelPolicy(f.labelPolicy)
	opts.Coercion.Missing = coercer.MissingPolicy(f.missing)
	if cmd.Flags().Changed("drop-columns") {
		opts.DropColumns = f.dropColumns
	}
	if cmd.Flags().Changed("drop-rows") {
		opts.DropRows = f.dropRows
	}
	if f.noHeuristics {
		opts.Heuristics = []ingestion.UnitHeuristic{}
	}
	return opts
}

// fileMaterial maps --material values onto a single-file Material
func (f *ingestFlags) fileMaterial() spectrum.Material {
	switch {
	case len(f.materials) == 0:
		return spectrum.NoMaterial()
	case len(f.materials) == 1 && f.numSpectra == 1:
		return spectrum.SingleMaterial(f.materials[0])
	default:
		return spectrum.MaterialList(f.materials...)
	}
}

func newFileCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	flags := &ingestFlags{}

	cmd := &cobra.Command{
		Use:   "file [path]",
		Short: "Ingest one .csv, .tsv, .txt or .xlsx file",
		Long: `Ingest one spectrum file and print one line per material.

Example: irspec file samples/quartz.csv --format horizontal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd, cfg)
			opts.Material = flags.fileMaterial()

			out, err := ingestion.NewDefaultIngester(logger).IngestFile(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			if flags.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return writeSummary(cmd.OutOrStdout(), out)
		},
	}

	bindIngestFlags(cmd, cfg, flags)
	return cmd
}

func newFolderCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	flags := &ingestFlags{}

	cmd := &cobra.Command{
		Use:   "folder [glob-pattern]",
		Short: "Ingest every file matching a glob pattern",
		Long: `Ingest every matching file in lexical path order. A failing file is
reported and skipped unless --fail-fast is given. Each --material labels the
file at the same position and requires --num-spectra 1.

Example: irspec folder 'samples/*.csv' --workers 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.FolderOptions{
				File:     flags.options(cmd, cfg),
				Workers:  flags.workers,
				FailFast: flags.failFast,
			}
			if len(flags.materials) > 0 {
				if flags.numSpectra != 1 {
					return fmt.Errorf("--material labels one file each and needs --num-spectra 1")
				}
				for _, m := range flags.materials {
					opts.Materials = append(opts.Materials, spectrum.SingleMaterial(m))
				}
			}

			svc := app.NewFolderService(ingestion.NewDefaultIngester(logger), logger)
			report, err := svc.IngestFolder(cmd.Context(), args[0], opts)
			if report != nil {
				for _, failed := range report.Failed() {
					kind := "failed"
					if failed.Rejected() {
						kind = "rejected"
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", kind, failed.Path, failed.Err)
				}
			}
			if err != nil {
				return err
			}

			if flags.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report.Records)
			}
			if err := writeSummary(cmd.OutOrStdout(), report.Records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d files ingested (run %s)\n", report.Succeeded(), len(report.Files), report.RunID)
			return nil
		},
	}

	bindIngestFlags(cmd, cfg, flags)
	cmd.Flags().IntVar(&flags.workers, "workers", cfg.Batch.Workers, "Files ingested concurrently")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", cfg.Batch.FailFast, "Stop at the first failing file")
	return cmd
}

func writeJSON(w io.Writer, out spectrum.OutputCollection) error {
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}

// writeSummary prints material, point count, band and peak per record
func writeSummary(w io.Writer, out spectrum.OutputCollection) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MATERIAL\tPOINTS\tFIRST_CM-1\tLAST_CM-1\tPEAK")
	for _, r := range out {
		n := r.RealPoints()
		if n == 0 {
			fmt.Fprintf(tw, "%s\t0\t-\t-\t-\n", r.Material)
			continue
		}
		intensities := make([]float64, n)
		for i, p := range r.Spectrum[:n] {
			intensities[i] = p.Intensity
		}
		peak, err := stats.Max(intensities)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.1f\t%.4f\n", r.Material, n,
			r.Spectrum[0].Wavenumber*spectrum.WavenumberDivisor,
			r.Spectrum[n-1].Wavenumber*spectrum.WavenumberDivisor,
			peak)
	}
	return tw.Flush()
}
