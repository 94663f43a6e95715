// Package validation checks incoming business documents at the API boundary
// before they reach the generators. The generators themselves stay lenient
// (bad branding degrades to defaults); this gate only rejects documents that
// are structurally unusable, like a missing name or a non-hex custom color.
package validation

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"bizforge/internal/common/errors"
)

const businessSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"businessType": {"type": "string"},
		"description": {"type": "string"},
		"yearsInBusiness": {"type": "integer", "minimum": 0},
		"email": {"type": "string"},
		"phone": {"type": "string"},
		"primaryCta": {
			"type": "string",
			"enum": ["call", "book", "quote", "visit", "shop", "contact", ""]
		},
		"services": {"type": "array", "items": {"type": "string"}},
		"testimonials": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "text"],
				"properties": {
					"rating": {"type": "integer", "minimum": 0, "maximum": 5}
				}
			}
		},
		"pricing": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "price"]
			}
		},
		"faqs": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question", "answer"]
			}
		},
		"branding": {
			"type": "object",
			"properties": {
				"colorScheme": {"type": "string"},
				"customPrimaryColor": {"type": "string", "pattern": "^#[0-9a-fA-F]{6}$"},
				"customSecondaryColor": {"type": "string", "pattern": "^#[0-9a-fA-F]{6}$"}
			}
		},
		"openingHours": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		}
	}
}`

var businessSchemaLoader = gojsonschema.NewStringLoader(businessSchema)

// ValidateBusiness checks a raw business document against the schema. A
// schema violation comes back as a PROFILE_VALIDATION_FAILED error listing
// every failed constraint.
func ValidateBusiness(raw []byte) error {
	result, err := gojsonschema.Validate(businessSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return errors.NewProfileValidationFailedError(err.Error())
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return errors.NewProfileValidationFailedError(strings.Join(details, "; "))
}
