package pesel

import "time"

// epoch1850 is the earliest birth date accepted under the default policy.
// PESEL predecessors never registered anyone born earlier.
var epoch1850 = time.Date(1850, time.January, 1, 0, 0, 0, 0, time.UTC)

// ValidationOption relaxes the birth-date policy applied by Validate and IsValid.
type ValidationOption func(*validationPolicy)

type validationPolicy struct {
	allowFuture     bool
	allowBefore1850 bool
}

// AllowFutureDates accepts numbers whose decoded birth date is after the
// current date. Useful for pre-registered numbers.
func AllowFutureDates() ValidationOption {
	return func(p *validationPolicy) {
		p.allowFuture = true
	}
}

// AllowDatesBefore1850 accepts numbers whose decoded birth date precedes
// 1850-01-01.
func AllowDatesBefore1850() ValidationOption {
	return func(p *validationPolicy) {
		p.allowBefore1850 = true
	}
}

// Validate checks code against the full PESEL scheme and reports the first
// failure as one of the package's sentinel errors: ErrInvalidFormat,
// ErrInvalidChecksum, ErrInvalidBirthDate, ErrFutureBirthDate or
// ErrBirthDateBefore1850. A nil result means code is a valid number under
// the configured policy. Validate never panics, whatever the input.
func Validate(code string, opts ...ValidationOption) error {
	var policy validationPolicy
	for _, opt := range opts {
		opt(&policy)
	}

	if len(code) != Length || !isDigits(code) {
		return ErrInvalidFormat
	}
	if !ValidChecksum(code) {
		return ErrInvalidChecksum
	}
	birth, err := decodeBirthDate(code[:6])
	if err != nil {
		return err
	}
	if !policy.allowFuture && birth.After(time.Now().UTC()) {
		return ErrFutureBirthDate
	}
	if !policy.allowBefore1850 && birth.Before(epoch1850) {
		return ErrBirthDateBefore1850
	}
	return nil
}

// IsValid reports whether code is a valid PESEL number under the configured
// policy. It is Validate collapsed to a boolean.
func IsValid(code string, opts ...ValidationOption) bool {
	return Validate(code, opts...) == nil
}
