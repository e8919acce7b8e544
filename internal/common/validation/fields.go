// internal/common/validation/fields.go
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError describes one failed check on one field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Result collects field errors for a single validation pass.
type Result struct {
	Errors []ValidationError `json:"errors,omitempty"`
}

func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Result) Add(field, message, code string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message, Code: code})
}

// FieldMap flattens the errors into field -> message, first error per field
// wins. This is the shape form clients render inline.
func (r *Result) FieldMap() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required fails when the trimmed value is empty.
func (r *Result) Required(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		r.Add(field, message, "REQUIRED_FIELD_MISSING")
	}
}

// Email fails when the value is present but not a plausible address.
func (r *Result) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if !emailPattern.MatchString(value) {
		r.Add(field, "Invalid email format", "INVALID_FORMAT")
	}
}

// LengthBetween fails when the trimmed value is present but outside [min, max].
func (r *Result) LengthBetween(field, value string, min, max int) {
	v := strings.TrimSpace(value)
	if v == "" {
		return
	}
	if len(v) < min {
		r.Add(field, fmt.Sprintf("Must be at least %d characters", min), "TOO_SHORT")
	} else if max > 0 && len(v) > max {
		r.Add(field, fmt.Sprintf("Must be at most %d characters", max), "TOO_LONG")
	}
}

// OneOf fails when the value is present but not in the allowed vocabulary.
func (r *Result) OneOf(field, value string, allowed []string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	r.Add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")), "INVALID_VALUE")
}

// NonNegative fails on negative numeric inputs.
func (r *Result) NonNegative(field string, value float64) {
	if value < 0 {
		r.Add(field, "Must not be negative", "INVALID_VALUE")
	}
}
