package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/unionfind"
)

// BenchmarkUnionConnected measures a mixed stream of unions and queries
// over a universe of one million elements.
func BenchmarkUnionConnected(b *testing.B) {
	const n = 1_000_000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, 1<<16)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	uf, _ := unionfind.New(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := pairs[i&(len(pairs)-1)]
		if i&1 == 0 {
			_ = uf.Union(p[0], p[1])
		} else {
			_, _ = uf.Connected(p[0], p[1])
		}
	}
}
