package pesel

// Sex is the sex encoded in a PESEL number's serial segment.
type Sex int

const (
	Female Sex = iota
	Male
)

func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

// sexDigitIndex is the position of the sex-bearing serial digit, per the
// YYMMDDZZZXQ layout of Dz.U. z 2016 r. poz. 722: X, the tenth digit.
const sexDigitIndex = 9

// SexOf reads the sex encoded in code: an odd serial digit means male, an
// even one female. It is defined only for well-formed 11-digit numbers;
// shorter input panics and non-digit input yields garbage. Validate first.
func SexOf(code string) Sex {
	if int(code[sexDigitIndex]-'0')%2 == 1 {
		return Male
	}
	return Female
}

// LegacySexFromCheckDigit reads the sex from the parity of the check digit
// (position 10) instead of the serial digit. Some legacy implementations do
// this; the two readings disagree whenever the check digit's parity differs
// from the serial digit's. Kept for comparing against such systems, not for
// new code.
func LegacySexFromCheckDigit(code string) Sex {
	if int(code[Length-1]-'0')%2 == 1 {
		return Male
	}
	return Female
}
