package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"irspec/domain/core"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarrySentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		sentinel error
	}{
		{"unsupported", UnsupportedFileType(".json"), CodeUnsupportedFileType, core.ErrUnsupportedFileType},
		{"invalid", InvalidInput("bad material"), CodeInvalidInput, core.ErrInvalidArgument},
		{"range", OutOfRange("too low"), CodeOutOfRange, core.ErrOutOfRange},
		{"resolution", ResolutionTooHigh("4001 points"), CodeResolutionTooHigh, core.ErrResolutionTooHigh},
		{"not found", NotFound("file x.csv"), CodeNotFound, core.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, GetCode(tt.err))
			assert.True(t, stderrors.Is(tt.err, tt.sentinel))
			assert.True(t, IsAppError(tt.err))
		})
	}
}

func TestWrapKeepsCode(t *testing.T) {
	err := Wrapf(OutOfRange("min 0.05"), "ingest %s", "a.csv")
	assert.Equal(t, CodeOutOfRange, GetCode(err))
	assert.True(t, stderrors.Is(err, core.ErrOutOfRange))

	plain := Wrap(fmt.Errorf("disk"), "read failed")
	assert.Equal(t, CodeInternalError, GetCode(plain))
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
	assert.False(t, IsAppError(fmt.Errorf("plain")))
}

func TestUnsupportedFileTypeListsExtensions(t *testing.T) {
	err := UnsupportedFileType(".json")
	assert.Contains(t, err.Error(), "'.csv', '.tsv', '.txt', and '.xlsx'")
	assert.Contains(t, err.Error(), ".json")
}
