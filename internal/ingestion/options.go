package ingestion

import (
	"irspec/adapters/datareadiness/coercer"
	"irspec/domain/spectrum"
)

// LabelPolicy controls how labels are derived for a multi-spectrum file
// when the caller supplies none.
type LabelPolicy string

const (
	// LabelPolicyLegacy reproduces the historical behaviour: no labels are
	// derived, so a multi-spectrum file without explicit labels fails.
	LabelPolicyLegacy LabelPolicy = "legacy"
	// LabelPolicyHeaderRow takes labels from row 0, columns 1..N, of the
	// oriented table.
	LabelPolicyHeaderRow LabelPolicy = "header-row"
)

// Options configures one file ingestion
type Options struct {
	// ReadingFormat is vertical (one material per column) or horizontal.
	// Empty means vertical; unknown values log a warning and act as vertical.
	ReadingFormat spectrum.ReadingFormat
	// NumSpectra must be at least 1.
	NumSpectra int
	Material   spectrum.Material

	// DropColumns takes precedence: when it is non-nil DropRows is ignored.
	DropColumns []int
	DropRows    []int

	LabelPolicy LabelPolicy
	Coercion    coercer.CoercionConfig
	// Heuristics run in order on the reading matrix. Nil means
	// DefaultHeuristics; an empty non-nil slice disables them.
	Heuristics []UnitHeuristic
}

// DefaultOptions returns the historical defaults: vertical, one spectrum,
// zero-filled missing readings and both unit heuristics.
func DefaultOptions() Options {
	return Options{
		ReadingFormat: spectrum.FormatVertical,
		NumSpectra:    1,
		Material:      spectrum.NoMaterial(),
		LabelPolicy:   LabelPolicyLegacy,
		Coercion:      coercer.DefaultCoercionConfig(),
	}
}

func (o Options) heuristics() []UnitHeuristic {
	if o.Heuristics == nil {
		return DefaultHeuristics()
	}
	return o.Heuristics
}
