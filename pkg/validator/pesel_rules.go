package validator

import (
	"fmt"
	"time"

	"github.com/peselkit/peselkit/pkg/pesel"
)

// ValidPESEL validates that value is a well-formed PESEL number. Policy
// options are fixed when the rule is built; the candidate string is checked
// when the rule set is applied.
func ValidPESEL(field, value string, opts ...pesel.ValidationOption) Rule {
	return Rule{
		Check: func() bool {
			return pesel.IsValid(value, opts...)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid PESEL number",
			TranslationKey: "validation.pesel",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PESELSex validates that value is a valid PESEL number encoding the given
// sex in its serial digit.
func PESELSex(field, value string, want pesel.Sex) Rule {
	return Rule{
		Check: func() bool {
			return pesel.IsValid(value) && pesel.SexOf(value) == want
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid PESEL number of a %s person", want),
			TranslationKey: "validation.pesel_sex",
			TranslationValues: map[string]any{
				"field": field,
				"sex":   want.String(),
			},
		},
	}
}

// PESELMinAge validates that value is a valid PESEL number whose holder is at
// least minAge years old today. Calendar arithmetic keeps birthday boundaries
// exact across leap years.
func PESELMinAge(field, value string, minAge int) Rule {
	return Rule{
		Check: func() bool {
			if !pesel.IsValid(value) {
				return false
			}
			birth, err := pesel.BirthDate(value)
			if err != nil {
				return false
			}
			return !time.Now().UTC().Before(birth.AddDate(minAge, 0, 0))
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("minimum age of %d years required", minAge),
			TranslationKey: "validation.pesel_min_age",
			TranslationValues: map[string]any{
				"field":   field,
				"min_age": minAge,
			},
		},
	}
}
