package pesel

import "errors"

var (
	// ErrInvalidFormat is returned when the input is not exactly 11 ASCII digits.
	ErrInvalidFormat = errors.New("must be exactly 11 decimal digits")

	// ErrInvalidChecksum is returned when the check digit does not match the payload.
	ErrInvalidChecksum = errors.New("check digit mismatch")

	// ErrInvalidBirthDate is returned when the date prefix does not decode to a real calendar date.
	ErrInvalidBirthDate = errors.New("encoded birth date is not a valid calendar date")

	// ErrFutureBirthDate is returned when the decoded birth date is after the current date
	// and the policy does not allow future dates.
	ErrFutureBirthDate = errors.New("birth date is in the future")

	// ErrBirthDateBefore1850 is returned when the decoded birth date precedes 1850-01-01
	// and the policy does not allow it.
	ErrBirthDateBefore1850 = errors.New("birth date is before 1850-01-01")

	// ErrYearOutOfRange is returned by Generate when the birth year cannot be
	// represented by any century band.
	ErrYearOutOfRange = errors.New("birth year outside the encodable range 1800-2299")
)
