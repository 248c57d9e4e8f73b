// Package validation implements the field validator shared by the kiosk's
// contact and feedback forms.
package validation

import (
	"regexp"
	"strings"
)

// FieldType mirrors the input types the validator distinguishes.
type FieldType string

const (
	TypeText  FieldType = "text"
	TypeEmail FieldType = "email"
	TypeTel   FieldType = "tel"
)

// Field describes a single form input.
type Field struct {
	Name     string
	Type     FieldType
	Value    string
	Required bool
}

// Result is the verdict for one field. Message is empty when Valid.
type Result struct {
	Valid   bool
	Message string
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	telPattern   = regexp.MustCompile(`^[0-9]{8}$`)
)

// Validate checks one field. Rules, in order:
//   - required but empty (after trimming) is invalid;
//   - a non-empty email must look like localpart@domain.tld;
//   - a non-empty telephone must be exactly 8 digits.
//
// Optional empty fields are valid.
func Validate(f Field) Result {
	trimmed := strings.TrimSpace(f.Value)

	if f.Required && trimmed == "" {
		return Result{Message: "This field is required"}
	}

	if f.Type == TypeEmail && trimmed != "" && !emailPattern.MatchString(f.Value) {
		return Result{Message: "Please enter a valid email address"}
	}

	if f.Type == TypeTel && trimmed != "" && !telPattern.MatchString(f.Value) {
		return Result{Message: "Please enter a valid 8-digit Botswana number"}
	}

	return Result{Valid: true}
}
