package montecarlo_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/montecarlo"
)

// BenchmarkThreshold measures one trial on a 100×100 grid.
func BenchmarkThreshold(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < b.N; i++ {
		if _, err := montecarlo.Threshold(100, r); err != nil {
			b.Fatal(err)
		}
	}
}
