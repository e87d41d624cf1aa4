package parser

import (
	"strconv"
	"testing"

	"github.com/indigo-web/reqparse/internal/requestgen"
	"github.com/indigo-web/utils/uf"
)

func BenchmarkParser(b *testing.B) {
	parser := New(nil, nil)

	b.Run("curl", func(b *testing.B) {
		b.SetBytes(int64(len(curlRequest)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = parser.Parse(curlRequest)
		}
	})

	for _, n := range []int{5, 10, 50} {
		raw := uf.B2S(requestgen.Generate("GET", "/", requestgen.Headers(n), "body"))

		b.Run(strconv.Itoa(n)+" headers", func(b *testing.B) {
			b.SetBytes(int64(len(raw)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = parser.Parse(raw)
			}
		})
	}
}
