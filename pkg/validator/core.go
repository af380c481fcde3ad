package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single field failure, with a translation key so hosts
// can localize the message.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is the collection Apply returns when any rule fails.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Rule is a single validation rule: a predicate plus the error reported when
// the predicate is false. Rules are built at configuration time and checked
// at Apply time.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns the accumulated ValidationErrors, or nil
// when all rules pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ExtractValidationErrors unwraps ValidationErrors from err, or returns nil
// when err carries none.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}
	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	var validationErr ValidationErrors
	return err != nil && errors.As(err, &validationErr)
}
