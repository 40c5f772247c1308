package exceptions

import (
	"strings"

	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		switch firstErr.Tag() {
		case "required":
			return fieldName + " is required"
		case "min":
			return fieldName + " must be at least " + firstErr.Param()
		case "max":
			return fieldName + " maximum at " + firstErr.Param()
		case "oneof":
			return fieldName + " must be one of [" + strings.Join(strings.Fields(firstErr.Param()), ", ") + "]"
		case "gte":
			return fieldName + " must be greater than or equal to " + firstErr.Param()
		case "uuid4":
			return fieldName + " must be a valid UUID"
		default:
			return fieldName + " is invalid"
		}
	}
	return constvars.ErrClientCannotProcessRequest
}
