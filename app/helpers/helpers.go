package helpers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func NewRequestID() string {
	return uuid.New().String()
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := fieldKey(err)
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "numeric":
			errorMessages[field] = fmt.Sprintf("%s must be a number.", err.Field())
		case "min", "gte":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max", "lte":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		case "len":
			errorMessages[field] = fmt.Sprintf("%s must be exactly %s characters.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed on the %s rule.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}

// fieldKey drops the root struct from the namespace, so nested fields keep
// their position: "items[1].name".
func fieldKey(err validator.FieldError) string {
	ns := err.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return strings.ToLower(ns)
}
