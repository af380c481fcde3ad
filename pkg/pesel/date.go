package pesel

import (
	"fmt"
	"time"
)

// centuryBands resolve the encoded month field back to a century. The bands
// are open ranges on the encoded month and must be checked from the highest
// offset down, so the order of this slice is significant.
var centuryBands = []struct {
	threshold int // exclusive lower bound of the encoded month range
	yearBase  int
	offset    int
}{
	{80, 1800, 80},
	{60, 2200, 60},
	{40, 2100, 40},
	{20, 2000, 20},
	{0, 1900, 0},
}

// encodeBands select the month offset for a birth year at generation time.
// Upper bounds are exclusive. Years from 2300 on have no band: a two-digit
// year remainder cannot round-trip more than one century per offset.
var encodeBands = []struct {
	minYear, maxYear, offset int
}{
	{1800, 1900, 80},
	{1900, 2000, 0},
	{2000, 2100, 20},
	{2100, 2200, 40},
	{2200, 2300, 60},
}

// BirthDate decodes the birth date encoded in positions 0-5 of code. It
// returns ErrInvalidFormat if code is not exactly 11 ASCII digits, and
// ErrInvalidBirthDate if the prefix does not map to a real calendar date.
// The result is a midnight UTC time.
func BirthDate(code string) (time.Time, error) {
	if len(code) != Length || !isDigits(code) {
		return time.Time{}, ErrInvalidFormat
	}
	return decodeBirthDate(code[:6])
}

// decodeBirthDate decodes a six-digit YYMMDD prefix. The caller guarantees
// prefix is six ASCII digits.
func decodeBirthDate(prefix string) (time.Time, error) {
	yy := int(prefix[0]-'0')*10 + int(prefix[1]-'0')
	mm := int(prefix[2]-'0')*10 + int(prefix[3]-'0')
	dd := int(prefix[4]-'0')*10 + int(prefix[5]-'0')

	year, month := 0, 0
	for _, band := range centuryBands {
		if mm > band.threshold {
			year = band.yearBase + yy
			month = mm - band.offset
			break
		}
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %02d", ErrInvalidBirthDate, mm)
	}

	// time.Date normalizes overflowing components (Feb 30 becomes Mar 2), so a
	// date is real only if it reads back unchanged.
	date := time.Date(year, time.Month(month), dd, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != dd {
		return time.Time{}, fmt.Errorf("%w: %02d-%02d-%02d", ErrInvalidBirthDate, yy, mm, dd)
	}
	return date, nil
}

// encodeBirthDate renders date as the six-digit YYMMDD prefix, folding the
// century into the month field. Years without a band yield ErrYearOutOfRange.
func encodeBirthDate(date time.Time) (string, error) {
	year, month, day := date.Date()
	for _, band := range encodeBands {
		if year >= band.minYear && year < band.maxYear {
			return fmt.Sprintf("%02d%02d%02d", year%100, int(month)+band.offset, day), nil
		}
	}
	return "", fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
}
