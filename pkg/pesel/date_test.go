package pesel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peselkit/peselkit/pkg/pesel"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBirthDate(t *testing.T) {
	t.Run("decodes each century band", func(t *testing.T) {
		cases := []struct {
			code string
			want time.Time
		}{
			{"40810100008", date(1840, time.January, 1)},   // 1800s, month offset +80
			{"75831200008", date(1875, time.March, 12)},    // 1800s
			{"44051401359", date(1944, time.May, 14)},      // 1900s, no offset
			{"00222900009", date(2000, time.February, 29)}, // 2000s, leap day
			{"50513000008", date(2150, time.November, 30)}, // 2100s
			{"99723100001", date(2299, time.December, 31)}, // 2200s, top of the range
		}
		for _, tc := range cases {
			got, err := pesel.BirthDate(tc.code)
			require.NoError(t, err, "code %s", tc.code)
			assert.True(t, got.Equal(tc.want), "code %s: got %s, want %s", tc.code, got, tc.want)
		}
	})

	t.Run("rejects impossible calendar dates", func(t *testing.T) {
		cases := []struct {
			name string
			code string
		}{
			{"february 30", "44023000003"},
			{"month zero", "44000100001"},
			{"month 13 in the 1900s band", "44130100007"},
			{"encoded month above all bands", "44930100001"},
			{"february 29 in a non-leap year", "01022900000"}, // 1901
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := pesel.BirthDate(tc.code)
				assert.ErrorIs(t, err, pesel.ErrInvalidBirthDate)
			})
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, code := range []string{"", "4405140135", "440514013591", "4405140135x"} {
			_, err := pesel.BirthDate(code)
			assert.ErrorIs(t, err, pesel.ErrInvalidFormat, "code %q", code)
		}
	})
}

// TestBirthDateRoundTrip drives the encoder through Generate and checks the
// decoder recovers the exact date, across every band and its edges.
func TestBirthDateRoundTrip(t *testing.T) {
	g := pesel.NewGenerator(1)

	years := []int{1800, 1849, 1850, 1899, 1900, 1944, 1999, 2000, 2004, 2099, 2100, 2199, 2200, 2299}
	for _, year := range years {
		for month := time.January; month <= time.December; month++ {
			lastDay := date(year, month, 1).AddDate(0, 1, -1).Day()
			for _, day := range []int{1, lastDay} {
				want := date(year, month, day)
				code, err := g.Generate(want, pesel.Female)
				require.NoError(t, err, "date %s", want)

				got, err := pesel.BirthDate(code)
				require.NoError(t, err, "date %s, code %s", want, code)
				assert.True(t, got.Equal(want), "date %s round-tripped to %s via %s", want, got, code)
			}
		}
	}
}
