package form

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// FieldValidation holds runtime validation rules for a form field. Lengths
// are counted in characters, not bytes.
type FieldValidation struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp

	// Check, when set, runs after the built-in rules and its error text is
	// shown verbatim.
	Check func(string) error
}

// ValidateText checks a text value against the validation rules.
func (v FieldValidation) ValidateText(value string) string {
	if v.Required && value == "" {
		return "required"
	}
	if value != "" {
		n := utf8.RuneCountInString(value)
		if v.MinLength > 0 && n < v.MinLength {
			return fmt.Sprintf("minimum %d characters", v.MinLength)
		}
		if v.MaxLength > 0 && n > v.MaxLength {
			return fmt.Sprintf("maximum %d characters", v.MaxLength)
		}
		if v.Pattern != nil && !v.Pattern.MatchString(value) {
			return fmt.Sprintf("must match pattern: %s", v.Pattern.String())
		}
	}
	if v.Check != nil {
		if err := v.Check(value); err != nil {
			return err.Error()
		}
	}
	return ""
}

func validateAll(rules []FieldValidation, value string) string {
	for _, r := range rules {
		if msg := r.ValidateText(value); msg != "" {
			return msg
		}
	}
	return ""
}
