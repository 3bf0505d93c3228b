package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordladder/builder"
)

// BenchmarkBuild measures a full build over 5k random words of length ≤ 7.
func BenchmarkBuild(b *testing.B) {
	v := randomVocabulary(rand.New(rand.NewSource(42)), 5000, 7, "abcdefghij")

	b.Run("Sequential", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = builder.Build(v)
		}
	})
	b.Run("Workers4", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = builder.Build(v, builder.WithWorkers(4))
		}
	})
}
