package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizforge/internal/common/errors"
)

func TestValidateBusinessMinimal(t *testing.T) {
	assert.NoError(t, ValidateBusiness([]byte(`{"name": "Joe's Plumbing"}`)))
}

func TestValidateBusinessMissingName(t *testing.T) {
	err := ValidateBusiness([]byte(`{"businessType": "plumber"}`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeProfileValidationFailed, errors.CodeOf(err))
	assert.Contains(t, errors.AsStandardError(err).Details, "name")
}

func TestValidateBusinessEmptyName(t *testing.T) {
	assert.Error(t, ValidateBusiness([]byte(`{"name": ""}`)))
}

func TestValidateBusinessBadCTA(t *testing.T) {
	err := ValidateBusiness([]byte(`{"name": "Joe's", "primaryCta": "telepathy"}`))
	assert.Error(t, err)
}

func TestValidateBusinessCTAVariants(t *testing.T) {
	for _, cta := range []string{"call", "book", "quote", "visit", "shop", "contact"} {
		assert.NoError(t, ValidateBusiness([]byte(`{"name": "Joe's", "primaryCta": "`+cta+`"}`)), cta)
	}
}

func TestValidateBusinessBadCustomColor(t *testing.T) {
	err := ValidateBusiness([]byte(`{"name": "Joe's", "branding": {"customPrimaryColor": "red"}}`))
	assert.Error(t, err)

	err = ValidateBusiness([]byte(`{"name": "Joe's", "branding": {"customPrimaryColor": "#ff0000"}}`))
	assert.NoError(t, err)
}

func TestValidateBusinessIncompleteTestimonial(t *testing.T) {
	err := ValidateBusiness([]byte(`{"name": "Joe's", "testimonials": [{"name": "Sam"}]}`))
	assert.Error(t, err)
}

func TestValidateBusinessMalformedJSON(t *testing.T) {
	err := ValidateBusiness([]byte(`{not json`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeProfileValidationFailed, errors.CodeOf(err))
}
