package pesel

// Length is the number of digits in a PESEL number.
const Length = 11

// checksumWeights are applied to positions 0-9; the result mod 10, subtracted
// from 10 (mod 10 again), must equal the digit at position 10.
var checksumWeights = [10]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// CheckDigit computes the check digit for the first ten digits of a PESEL
// number. It returns ErrInvalidFormat if first10 is not exactly ten ASCII
// digits.
func CheckDigit(first10 string) (int, error) {
	if len(first10) != Length-1 || !isDigits(first10) {
		return 0, ErrInvalidFormat
	}
	sum := 0
	for i, w := range checksumWeights {
		sum += int(first10[i]-'0') * w
	}
	return (10 - sum%10) % 10, nil
}

// ValidChecksum reports whether code is an 11-digit string whose last digit
// matches the check digit recomputed from the first ten. It returns false for
// input of any other shape and never panics.
func ValidChecksum(code string) bool {
	if len(code) != Length || !isDigits(code) {
		return false
	}
	want, err := CheckDigit(code[:Length-1])
	if err != nil {
		return false
	}
	return want == int(code[Length-1]-'0')
}

// isDigits reports whether s consists solely of ASCII decimal digits.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
