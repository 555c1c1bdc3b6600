package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/underbar-go/underbar/commonerrors"
	"github.com/underbar-go/underbar/commonerrors/errortest"
)

func TestValidateEmbedded(t *testing.T) {
	cfg := defaultTestConfiguration()
	require.NoError(t, ValidateEmbedded(cfg))

	cfg.Logging.Backend = "unknown"
	err := ValidateEmbedded(cfg)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	var vErr IValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Logging->backend", vErr.GetTreePath())
	assert.Equal(t, "LOGGING_BACKEND", vErr.GetMapStructurePath())

	wrapped := WrapValidationError(&[]string{"app"}[0], err)
	assert.Equal(t, "APP_LOGGING_BACKEND", wrapped.GetMapStructurePath())
	assert.Nil(t, WrapValidationError(nil, nil))
	assert.Nil(t, WrapFieldValidationError("field", nil, nil))
}

func TestValidationErrorFromPlainError(t *testing.T) {
	vErr := WrapFieldValidationError("Field", nil, commonerrors.ErrUnexpected)
	require.NotNil(t, vErr)
	assert.Equal(t, "Field", vErr.GetTreePath())
	assert.Empty(t, vErr.GetMapStructurePath())
	assert.Equal(t, commonerrors.ErrUnexpected.Error(), vErr.GetReason())
	errortest.AssertError(t, vErr, commonerrors.ErrInvalid)
	assert.Equal(t, vErr.Error(), vErr.String())
}

func Test_processMapStructureString(t *testing.T) {
	tests := []struct {
		mapstructureTag      string
		expectedProcessedTag string
	}{
		{},
		{mapstructureTag: "         "},
		{mapstructureTag: "     -    "},
		{mapstructureTag: "    , omitzero      "},
		{mapstructureTag: "  ,omitempty  , omitzero    , SQUASH  "},
		{mapstructureTag: "test  ,omitempty  , omitzero    , squash  ", expectedProcessedTag: "test"},
		{mapstructureTag: "max_entries", expectedProcessedTag: "max_entries"},
		{mapstructureTag: "   max_entries ,remain  ", expectedProcessedTag: "max_entries"},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.mapstructureTag, func(t *testing.T) {
			assert.Equal(t, test.expectedProcessedTag, processMapStructureString(test.mapstructureTag))
		})
	}
}
