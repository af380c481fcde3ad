package pesel

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// Generator produces PESEL numbers from a dedicated pseudo-random source.
// The zero value is not usable; construct with NewGenerator. A Generator is
// safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a Generator seeded with seed. A fixed seed yields a
// reproducible sequence of numbers, which is what tests want.
func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// defaultGenerator backs the package-level Generate and Random.
var defaultGenerator = NewGenerator(time.Now().UnixNano())

// Generate produces a valid PESEL number for a person of the given sex born
// on date. The serial segment is drawn uniformly from [0, 9999] and its last
// digit's parity adjusted to the requested sex. Years outside 1800-2299
// yield ErrYearOutOfRange.
func (g *Generator) Generate(date time.Time, sex Sex) (string, error) {
	prefix, err := encodeBirthDate(date)
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	serial := g.rnd.Intn(10000)
	g.mu.Unlock()
	serial = adjustSerialParity(serial, sex)

	first10 := prefix + fmt.Sprintf("%04d", serial)
	check, err := CheckDigit(first10)
	if err != nil {
		return "", err
	}
	return first10 + strconv.Itoa(check), nil
}

// Random produces a valid PESEL number for a uniformly random sex and a
// uniformly random birth date between 1850-01-01 and the current date,
// inclusive. The output always passes Validate under the default policy.
func (g *Generator) Random() string {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(epoch1850).Hours() / 24)

	g.mu.Lock()
	offset := g.rnd.Intn(days + 1)
	sex := Sex(g.rnd.Intn(2))
	g.mu.Unlock()

	// The drawn date is always inside the encodable range.
	code, _ := g.Generate(epoch1850.AddDate(0, 0, offset), sex)
	return code
}

// adjustSerialParity forces the serial's last digit to the parity that
// encodes sex: odd for male, even for female. A wrong-parity digit is
// incremented, except 9, which is decremented to stay a single digit.
func adjustSerialParity(serial int, sex Sex) int {
	last := serial % 10
	if (last%2 == 1) == (sex == Male) {
		return serial
	}
	if last == 9 {
		return serial - 1
	}
	return serial + 1
}

// Generate produces a valid PESEL number for the given birth date and sex
// using the process-wide random source.
func Generate(date time.Time, sex Sex) (string, error) {
	return defaultGenerator.Generate(date, sex)
}

// Random produces a valid PESEL number for a random person born between
// 1850-01-01 and today, using the process-wide random source.
func Random() string {
	return defaultGenerator.Random()
}
