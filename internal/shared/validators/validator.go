package validators

import (
	"access-log-analytics/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const (
	TagTopN      = "topn"
	TagAttribute = "attribute"
)

// New creates a new validator instance with the custom rules of this service registered.
//
//   - topn: string field holding "all" or a positive integer (see models.ParseTopN)
//   - attribute: string field naming a grouping attribute (see models.NewAttributeFromString)
func New() *Validate {
	validate := validator.New()
	// registration only fails on an empty tag or nil func
	_ = validate.RegisterValidation(TagTopN, validateTopN)
	_ = validate.RegisterValidation(TagAttribute, validateAttribute)
	return validate
}

func validateTopN(fl validator.FieldLevel) bool {
	_, err := models.ParseTopN(fl.Field().String())
	return err == nil
}

func validateAttribute(fl validator.FieldLevel) bool {
	_, err := models.NewAttributeFromString(fl.Field().String())
	return err == nil
}
