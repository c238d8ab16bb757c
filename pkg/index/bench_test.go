package index

import (
	"fmt"
	"math/rand"
	"testing"
)

// benchTerms builds a reproducible multi-word term list.
func benchTerms(n int) []string {
	rng := rand.New(rand.NewSource(42))
	adjectives := []string{"quick", "lazy", "bright", "silent", "ancient", "modern", "tiny", "giant"}
	nouns := []string{"photo", "world", "editor", "server", "booth", "magic", "engine", "index"}

	terms := make([]string, 0, n)
	for i := 0; i < n; i++ {
		terms = append(terms, fmt.Sprintf("%s %s %d",
			adjectives[rng.Intn(len(adjectives))],
			nouns[rng.Intn(len(nouns))],
			i))
	}
	return terms
}

func benchQuery(rng *rand.Rand, length int) string {
	const alphanum = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanum[rng.Intn(len(alphanum))]
	}
	return string(b)
}

func BenchmarkLearn(b *testing.B) {
	terms := benchTerms(1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dict := New[string]()
		for _, term := range terms {
			dict.Learn(term, term)
		}
	}
}

func BenchmarkStrictLookup(b *testing.B) {
	terms := benchTerms(1000)
	dict := New[string]()
	for _, term := range terms {
		dict.Learn(term, term)
	}
	rng := rand.New(rand.NewSource(7))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dict.FindTerms(terms[rng.Intn(len(terms))], Strict())
	}
}

func BenchmarkPrefixGibberish(b *testing.B) {
	terms := benchTerms(1000)
	dict := New[string]()
	for _, term := range terms {
		dict.Learn(term, term)
	}
	rng := rand.New(rand.NewSource(7))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dict.FindTerms(benchQuery(rng, 3), Prefix(3))
	}
}

func BenchmarkFuzzyGibberish(b *testing.B) {
	terms := benchTerms(1000)
	dict := New[string]()
	for _, term := range terms {
		dict.Learn(term, term)
	}
	rng := rand.New(rand.NewSource(7))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dict.FindTerms(benchQuery(rng, 3), Fuzzy(5, TypoCorrection))
	}
}
