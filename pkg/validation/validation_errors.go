package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps request struct field names to the names clients send.
var FieldLabels = map[string]string{
	"Type":         "type",
	"InternshipID": "internshipId",
	"HackathonID":  "hackathonId",
	"PostingID":    "item id",
}

// missingMessages overrides the generic "required" message for fields with a
// fixed client contract.
var missingMessages = map[string]string{
	"Type":      "Missing type",
	"PostingID": "Missing item id",
}

// FormatValidationErrors converts validator.ValidationErrors to client messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// FirstMessage returns the message for the first failed field.
func FirstMessage(err error) string {
	msgs := FormatValidationErrors(err)
	if len(msgs) == 0 {
		return "Invalid request"
	}
	return msgs[0]
}

func formatSingleError(e validator.FieldError) string {
	fieldName := e.Field()
	label := getFieldLabel(fieldName)

	switch e.Tag() {
	case "required", "present":
		if msg, ok := missingMessages[fieldName]; ok {
			return msg
		}
		return fmt.Sprintf("Missing %s", label)
	case "doc_id":
		return "Invalid item id"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	default:
		return fmt.Sprintf("Invalid %s (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
