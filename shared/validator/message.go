package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"min":         "{field} must be at least {param}",
	"max":         "{field} must be at most {param}",
	"oneof":       "{field} must be one of {param}",
	"email":       "{field} must be a valid email address",
	"phone":       "{field} must be a valid phone number",
	"isodate":     "{field} must be a date in YYYY-MM-DD format",
	"uuid":        "{field} must be a valid UUID",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

// message describes the first failed rule. Unknown rules fall back to the validator's own text.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err.Error()
	}

	first := fieldErrors[0]

	template, ok := messages[first.Tag()]
	if !ok {
		return first.Error()
	}

	return strings.NewReplacer("{field}", first.Field(), "{param}", first.Param()).Replace(template)
}
