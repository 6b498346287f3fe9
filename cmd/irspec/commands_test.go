package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"irspec/adapters/datareadiness/coercer"
	"irspec/domain/spectrum"
	"irspec/internal"
	"irspec/internal/config"
	"irspec/internal/ingestion"
	"irspec/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Ingest: config.IngestConfig{
			ReadingFormat: spectrum.FormatVertical,
			NumSpectra:    1,
			LabelPolicy:   ingestion.LabelPolicyLegacy,
			MissingPolicy: coercer.MissingFill,
		},
		Batch: config.BatchConfig{Workers: 1},
	}
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(testConfig(), internal.NewNopLogger())
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	axis := testkit.LinearAxis(10, 1000, 10)
	return testkit.WriteCSV(t, dir, name, testkit.VerticalRows("wavenumber",
		testkit.Spectrum{Label: "A", Wavenumbers: axis, Values: testkit.Ramp(10, 0.1, 0.3)}))
}

func TestFileCommandSummary(t *testing.T) {
	path := writeSample(t, t.TempDir(), "sample_a.csv")

	out, _, err := runCLI(t, "file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "MATERIAL")
	assert.Contains(t, out, "sample_a.csv")
	assert.Contains(t, out, "1000.0")
	assert.Contains(t, out, "1090.0")
}

func TestFileCommandJSONWithMaterial(t *testing.T) {
	path := writeSample(t, t.TempDir(), "sample.csv")

	out, _, err := runCLI(t, "file", path, "--material", "quartz", "--json")
	require.NoError(t, err)

	var records spectrum.OutputCollection
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "quartz", records[0].Material)
	assert.Len(t, records[0].Spectrum, spectrum.PaddedLength)
}

func TestFileCommandUnsupportedType(t *testing.T) {
	path := testkit.WriteFile(t, t.TempDir(), "a.ods", "")
	_, _, err := runCLI(t, "file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supported filetypes")
}

func TestFolderCommandReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "a.csv")
	testkit.WriteCSV(t, dir, "b.csv", [][]string{{"wavenumber", "A"}, {"9000", "0.1"}})

	out, errOut, err := runCLI(t, "folder", filepath.Join(dir, "*.csv"), "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "a.csv")
	assert.Contains(t, out, "1/2 files ingested")
	assert.True(t, strings.Contains(errOut, "rejected "+filepath.Join(dir, "b.csv")))
}

func TestFolderCommandMaterialNeedsSingleSpectrum(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "a.csv")

	_, _, err := runCLI(t, "folder", filepath.Join(dir, "*.csv"), "--material", "x", "--num-spectra", "2")
	assert.Error(t, err)
}
