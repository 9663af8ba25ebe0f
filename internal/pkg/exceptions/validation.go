package exceptions

import (
	"errors"
	"homeo-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcess
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return constvars.ErrDevInvalidInput
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatFieldError(fieldErr))
	}
	return strings.Join(messages, ", ")
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcess
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return formatFieldError(validationErrors[0])
	}
	return constvars.ErrDevInvalidInput
}

func formatFieldError(fieldErr validator.FieldError) string {
	fieldName := strings.ToLower(fieldErr.Field())
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}
