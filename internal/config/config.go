package config

import (
	"os"
	"strconv"

	"irspec/adapters/datareadiness/coercer"
	"irspec/domain/spectrum"
	"irspec/internal"
	"irspec/internal/errors"
	"irspec/internal/ingestion"
)

// Config represents the complete application configuration
type Config struct {
	Ingest IngestConfig
	Batch  BatchConfig
	Log    LogConfig
}

// IngestConfig holds the per-file defaults
type IngestConfig struct {
	ReadingFormat     spectrum.ReadingFormat
	NumSpectra        int
	LabelPolicy       ingestion.LabelPolicy
	MissingPolicy     coercer.MissingPolicy
	FillValue         float64
	DisableHeuristics bool
}

// BatchConfig holds folder ingestion settings
type BatchConfig struct {
	Workers  int
	FailFast bool
}

// LogConfig holds logging settings
type LogConfig struct {
	Level internal.LogLevel
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Ingest: IngestConfig{
			ReadingFormat:     spectrum.ReadingFormat(getEnvOrDefault("IRSPEC_READING_FORMAT", string(spectrum.FormatVertical))),
			NumSpectra:        getEnvIntOrDefault("IRSPEC_NUM_SPECTRA", 1),
			LabelPolicy:       ingestion.LabelPolicy(getEnvOrDefault("IRSPEC_LABEL_POLICY", string(ingestion.LabelPolicyLegacy))),
			MissingPolicy:     coercer.MissingPolicy(getEnvOrDefault("IRSPEC_MISSING_POLICY", string(coercer.MissingFill))),
			FillValue:         getEnvFloatOrDefault("IRSPEC_FILL_VALUE", 0),
			DisableHeuristics: getEnvBoolOrDefault("IRSPEC_DISABLE_HEURISTICS", false),
		},
		Batch: BatchConfig{
			Workers:  getEnvIntOrDefault("IRSPEC_WORKERS", 1),
			FailFast: getEnvBoolOrDefault("IRSPEC_FAIL_FAST", false),
		},
		Log: LogConfig{
			Level: internal.ParseLogLevel(os.Getenv("LOG_LEVEL")),
		},
	}

	if err := Validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Validate checks enum fields and numeric limits
func Validate(config *Config) error {
	if config.Ingest.NumSpectra < 1 {
		return errors.ConfigInvalid("IRSPEC_NUM_SPECTRA must be >= 1")
	}
	switch config.Ingest.LabelPolicy {
	case ingestion.LabelPolicyLegacy, ingestion.LabelPolicyHeaderRow:
	default:
		return errors.ConfigInvalid("IRSPEC_LABEL_POLICY must be 'legacy' or 'header-row'")
	}
	switch config.Ingest.MissingPolicy {
	case coercer.MissingFill, coercer.MissingReject:
	default:
		return errors.ConfigInvalid("IRSPEC_MISSING_POLICY must be 'fill' or 'reject'")
	}
	if config.Batch.Workers < 1 {
		return errors.ConfigInvalid("IRSPEC_WORKERS must be >= 1")
	}
	return nil
}

// IngestOptions converts the configuration into per-file options
func (c *Config) IngestOptions() ingestion.Options {
	opts := ingestion.DefaultOptions()
	opts.ReadingFormat = c.Ingest.ReadingFormat
	opts.NumSpectra = c.Ingest.NumSpectra
	opts.LabelPolicy = c.Ingest.LabelPolicy
	opts.Coercion = coercer.CoercionConfig{
		Missing:   c.Ingest.MissingPolicy,
		FillValue: c.Ingest.FillValue,
	}
	if c.Ingest.DisableHeuristics {
		opts.Heuristics = []ingestion.UnitHeuristic{}
	}
	return opts
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
