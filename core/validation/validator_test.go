package validation

import (
	"testing"

	"ebook-library/core/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scanBody struct {
	DirPath string `json:"dirPath" validate:"required"`
	Format  string `json:"format,omitempty" validate:"omitempty,oneof=json csv"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(scanBody{DirPath: "/books"}))

	err := v.Validate(scanBody{Format: "xml"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))

	var appErr *apperrors.Error
	require.True(t, apperrors.As(err, &appErr))
	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["dirPath"])
	assert.Equal(t, "must be one of: json csv", details["format"])
	assert.Equal(t, "dirPath is required", appErr.Message)
}
