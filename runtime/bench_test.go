package runtime_test

import (
	"strings"
	"testing"

	"github.com/klex-lang/klex"
	"github.com/klex-lang/klex/runtime"
)

func BenchmarkEngineNextToken(b *testing.B) {
	spec, err := klex.ParseSpec(arithSpec)
	if err != nil {
		b.Fatal(err)
	}
	input := strings.Repeat("12 + abc ", 256)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		eng, err := runtime.NewEngine(spec, input, nil)
		if err != nil {
			b.Fatal(err)
		}
		for {
			_, ok, err := eng.NextToken()
			if err != nil {
				b.Fatal(err)
			}
			if !ok {
				break
			}
		}
	}
}
