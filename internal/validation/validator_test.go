package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/streamlens/streamlens-server/internal/errors"
)

type pageParams struct {
	Page     int `json:"page" validate:"gte=1"`
	PageSize int `json:"page_size" validate:"gte=1,lte=500"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(pageParams{Page: 1, PageSize: 100})

	assert.NoError(t, err)
}

func TestValidate_ReturnsDomainError(t *testing.T) {
	v := New()

	err := v.Validate(pageParams{Page: 0, PageSize: 1000})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be greater than or equal to 1", details["page"])
	assert.Equal(t, "must be less than or equal to 500", details["page_size"])
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	v := New()

	type req struct {
		YearLo int `json:"year_lo,omitempty" validate:"gte=1900"`
	}
	err := v.Validate(req{YearLo: 7})

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	details := domainErr.Details.(map[string]string)
	assert.Contains(t, details, "year_lo")
}
