package coercer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"irspec/internal/errors"
)

// MissingPolicy decides what a reading cell becomes when it is not a number
type MissingPolicy string

const (
	// MissingFill replaces non-numeric and empty cells with FillValue (0 by default).
	MissingFill MissingPolicy = "fill"
	// MissingReject fails the ingestion on the first non-numeric cell.
	MissingReject MissingPolicy = "reject"
)

// TypeCoercer turns raw cell text into float64 values
type TypeCoercer struct {
	config CoercionConfig
}

// CoercionConfig defines how unparseable reading cells are handled
type CoercionConfig struct {
	Missing   MissingPolicy `json:"missing"`
	FillValue float64       `json:"fill_value"`
}

// DefaultCoercionConfig fills missing readings with zero
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		Missing:   MissingFill,
		FillValue: 0,
	}
}

// NewTypeCoercer creates a coercer with the given config. An empty policy means fill.
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	if config.Missing == "" {
		config.Missing = MissingFill
	}
	return &TypeCoercer{config: config}
}

// Config returns the effective configuration
func (c *TypeCoercer) Config() CoercionConfig {
	return c.config
}

// ParseNumeric parses one cell. Surrounding whitespace is ignored; thousands
// separators, currency and percent signs are not accepted. A cell reading
// "nan" parses but is reported as missing.
func (c *TypeCoercer) ParseNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), false
	}
	if math.IsNaN(v) {
		return v, false
	}
	return v, true
}

// CoerceColumn parses every cell, leaving NaN where a cell is not numeric
func (c *TypeCoercer) CoerceColumn(cells []string) []float64 {
	out := make([]float64, len(cells))
	for i, cell := range cells {
		out[i], _ = c.ParseNumeric(cell)
	}
	return out
}

// FillColumn parses every cell and applies the missing-value policy. It
// returns the values and how many cells were filled.
func (c *TypeCoercer) FillColumn(cells []string) ([]float64, int, error) {
	out := make([]float64, len(cells))
	filled := 0
	for i, cell := range cells {
		v, ok := c.ParseNumeric(cell)
		if ok {
			out[i] = v
			continue
		}
		if c.config.Missing == MissingReject {
			return nil, filled, errors.InvalidInputf("non-numeric reading %q at row %d", cell, i)
		}
		out[i] = c.config.FillValue
		filled++
	}
	return out, filled, nil
}

// String describes the policy for logs
func (c CoercionConfig) String() string {
	if c.Missing == MissingReject {
		return "reject non-numeric"
	}
	return fmt.Sprintf("fill non-numeric with %g", c.FillValue)
}
