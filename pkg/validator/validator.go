package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Record ids come from the upstream as positive ints; zero means "new".
	validate.RegisterValidation("record_id", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() > 0
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// Error is a request validation failure. Handlers match on the type to
// tell a bad request apart from an upstream or transport failure.
type Error struct {
	Field string
	Tag   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", e.Field, e.Tag)
}

// FirstError returns the first validation failure as a user-facing error,
// shared by every service instead of repeating the formatting at each
// call site.
func FirstError(data interface{}) error {
	if errs := ValidateStruct(data); len(errs) > 0 {
		return &Error{Field: errs[0].FailedField, Tag: errs[0].Tag}
	}
	return nil
}
