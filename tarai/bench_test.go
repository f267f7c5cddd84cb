package tarai_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/tarai/tarai"
)

var benchCases = [][3]int{
	{10, 5, 0},
	{12, 6, 0},
}

// Every iteration is a fresh top-level call, so memo tables and thunks are
// never carried from one iteration into the next.
func BenchmarkVariants(b *testing.B) {
	for _, v := range tarai.Variants() {
		fn := v.Func()
		for _, c := range benchCases {
			b.Run(fmt.Sprintf("%s/case_%d_%d_%d", v, c[0], c[1], c[2]), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_ = fn(c[0], c[1], c[2])
				}
			})
		}
	}
}

func BenchmarkLazyEnumDeep(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = tarai.LazyEnum(1000, 0, -1000)
	}
}
