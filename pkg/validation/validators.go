package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxDocIDBytes is the longest document id the stores accept.
const maxDocIDBytes = 1500

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("doc_id", DocID); err != nil {
		return err
	}
	return v.RegisterValidation("present", Present)
}

// DocID accepts ids usable as a document key: no path separator, not a
// relative path element, bounded length. Empty values pass; combine with
// required when needed.
func DocID(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	if val == "." || val == ".." {
		return false
	}
	return len(val) <= maxDocIDBytes && !strings.Contains(val, "/")
}

// Present rejects the zero value of whatever type the field holds. On an any
// field `required` only rejects nil, so "", 0 and false need this tag.
func Present(fl validator.FieldLevel) bool {
	field := fl.Field()
	return field.IsValid() && !field.IsZero()
}
