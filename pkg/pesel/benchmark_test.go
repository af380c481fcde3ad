package pesel_test

import (
	"testing"
	"time"

	"github.com/peselkit/peselkit/pkg/pesel"
)

func BenchmarkIsValid(b *testing.B) {
	b.Run("Valid", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = pesel.IsValid("44051401359")
		}
	})

	b.Run("BadChecksum", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = pesel.IsValid("44051401358")
		}
	})

	b.Run("Malformed", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = pesel.IsValid("not-a-pesel")
		}
	})
}

func BenchmarkGenerate(b *testing.B) {
	g := pesel.NewGenerator(1)
	birth := time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = g.Generate(birth, pesel.Male)
	}
}

func BenchmarkRandom(b *testing.B) {
	g := pesel.NewGenerator(1)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.Random()
	}
}
