package apierror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrorsFrom converts a gin binding error into per-field errors. It
// returns nil when err is not a validation failure.
func FieldErrorsFrom(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldName(fe),
			Message: fieldMessage(fe),
			Code:    fe.Tag(),
		})
	}
	return out
}

// fieldName lower-cases the first letter so struct names line up with query
// parameter names (StartDate -> startDate).
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match the layout %s", fe.Param())
	default:
		return fmt.Sprintf("failed the %q check", fe.Tag())
	}
}
