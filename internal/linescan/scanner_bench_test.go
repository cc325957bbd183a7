package linescan

import (
	"strings"
	"testing"

	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

func BenchmarkScan(b *testing.B) {
	content := strings.Repeat("lorem ipsum dolor sit amet, consectetur KEYWORD adipiscing elit\n", 10000)
	req := kwsearch.SearchRequest{Keyword: "keyword", MaxMatches: kwsearch.MaxMatchesCeiling, ContextLines: 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Scan(content, req)
	}
}
