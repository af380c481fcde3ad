// Package pesel validates and generates PESEL numbers, the Polish national
// identification numbers used since 1979.
//
// A PESEL has the form YYMMDDZZZXQ: an 11-digit string where YYMMDD encodes
// the birth date (with the century folded into the month field), ZZZX is a
// serial segment whose last digit X encodes sex (odd for males, even for
// females), and Q is a weighted check digit.
//
// # Validation
//
// Validate and IsValid check a candidate string against the full scheme:
// length, check digit, and a decodable, real calendar birth date. They never
// panic; malformed input of any kind is simply invalid.
//
//	ok := pesel.IsValid("44051401359") // true
//
// By default only birth dates from 1850-01-01 up to the current date are
// accepted. Both bounds can be lifted independently:
//
//	pesel.IsValid(code, pesel.AllowFutureDates())
//	pesel.IsValid(code, pesel.AllowDatesBefore1850())
//
// # Generation
//
// Generate produces a valid number for a given birth date and sex, drawing
// the serial segment from a shared pseudo-random source. Random produces a
// number for a uniformly random person born between 1850-01-01 and today.
//
//	code, err := pesel.Generate(time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), pesel.Female)
//	code := pesel.Random()
//
// For deterministic output (e.g. in tests) construct a private Generator
// with a fixed seed:
//
//	g := pesel.NewGenerator(42)
//	code, err := g.Generate(date, pesel.Male)
//
// # Century encoding
//
// The month field carries the century as an additive offset: +80 for the
// 1800s, +0 for the 1900s, +20 for the 2000s, +40 for the 2100s and +60 for
// the 2200s. Dates outside [1800-01-01, 2299-12-31] cannot be represented
// and are rejected by Generate with ErrYearOutOfRange.
package pesel
