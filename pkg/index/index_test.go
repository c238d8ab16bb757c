package index

import (
	"testing"
)

func contains(terms []string, want string) bool {
	for _, t := range terms {
		if t == want {
			return true
		}
	}
	return false
}

func TestStrictAndPrefix(t *testing.T) {
	dict := New[string]()
	dict.Learn("hello", "hello")

	if got := dict.FindTerms("hello", Strict()); len(got) != 1 || got[0] != "hello" {
		t.Errorf("strict 'hello' = %v, want exactly [hello]", got)
	}
	if got := dict.FindTerms("hell", Strict()); len(got) != 0 {
		t.Errorf("strict 'hell' = %v, want empty (not learned as a whole word)", got)
	}
	if got := dict.FindTerms("hell", Prefix(10)); !contains(got, "hello") {
		t.Errorf("prefix(10) 'hell' = %v, want to contain hello", got)
	}

	dict.Learn("hell", "hell")

	if got := dict.FindTerms("hell", Strict()); len(got) != 1 || got[0] != "hell" {
		t.Errorf("strict 'hell' = %v, want exactly [hell]", got)
	}
	if got := dict.FindTerms("hell", Prefix(10)); len(got) != 2 {
		t.Errorf("prefix(10) 'hell' = %v, want both hell and hello", got)
	}
	if got := dict.FindTerms("he", Prefix(10)); len(got) != 2 {
		t.Errorf("prefix(10) 'he' = %v, want both hell and hello", got)
	}

	// If depth is too shallow, find nothing
	if got := dict.FindTerms("he", Prefix(1)); len(got) != 0 {
		t.Errorf("prefix(1) 'he' = %v, want empty", got)
	}

	// What was never learned stays unfound
	for _, q := range []string{"hejkjk", "obama", "ajdklajhf", "zzzqqq"} {
		if got := dict.FindTerms(q, Prefix(10)); len(got) != 0 {
			t.Errorf("prefix(10) %q = %v, want empty", q, got)
		}
	}
}

func TestPrefixZeroEqualsStrict(t *testing.T) {
	dict := New[string]()
	dict.Learn("hello", "hello")
	dict.Learn("hell", "hell")

	for _, q := range []string{"he", "hell", "hello", "x"} {
		strict := dict.FindTerms(q, Strict())
		zero := dict.FindTerms(q, Prefix(0))
		if len(strict) != len(zero) {
			t.Errorf("query %q: strict=%v prefix(0)=%v, want identical", q, strict, zero)
		}
	}
}

func TestPrefixMonotonicity(t *testing.T) {
	dict := New[string]()
	for _, term := range []string{"a", "ab", "abc", "abcd", "abcde"} {
		dict.Learn(term, term)
	}

	prev := -1
	for depth := 0; depth <= 5; depth++ {
		got := dict.FindTerms("a", Prefix(depth))
		if len(got) < prev {
			t.Errorf("prefix(%d) 'a' shrank: %d < %d results", depth, len(got), prev)
		}
		prev = len(got)
	}
	if prev != 5 {
		t.Errorf("prefix(5) 'a' found %d terms, want all 5", prev)
	}
}

func TestLearnIsIdempotent(t *testing.T) {
	dict := New[string]()
	dict.Learn("hello world", "hello world")
	dict.Learn("hello world", "hello world")

	if got := dict.FindTerms("hello", Strict()); len(got) != 1 {
		t.Errorf("strict 'hello' after double learn = %v, want a single entry", got)
	}
	if dict.TermCount() != 1 {
		t.Errorf("TermCount = %d after double learn, want 1", dict.TermCount())
	}
}

func TestWordsAreIndexedSeparately(t *testing.T) {
	dict := New[string]()
	dict.Learn("Hello World", "Hello World")
	dict.Learn("World Is Mine", "World Is Mine")
	dict.Learn("miku miku ni shite ageru", "miku miku ni shite ageru")

	// "world" terminates a word of both multi-word terms
	got := dict.FindTerms("world", Strict())
	if !contains(got, "Hello World") || !contains(got, "World Is Mine") {
		t.Errorf("strict 'world' = %v, want both terms sharing the word", got)
	}

	if got := dict.FindTerms("mi", Prefix(10)); len(got) == 0 {
		t.Errorf("prefix(10) 'mi' found nothing")
	}
	if got := dict.FindTerms("hello", Strict()); !contains(got, "Hello World") {
		t.Errorf("strict 'hello' = %v, want Hello World", got)
	}
}

func TestCompactForm(t *testing.T) {
	dict := New[string]()
	dict.Learn("Hello World", "Hello World")

	// The whole term typed as one unbroken run
	if got := dict.FindTerms("helloworld", Strict()); !contains(got, "Hello World") {
		t.Errorf("strict 'helloworld' = %v, want Hello World via compact form", got)
	}
}

func TestCaseAndPunctuation(t *testing.T) {
	dict := New[string]()
	dict.Learn("Hello", "Hello")

	for _, q := range []string{"HELLO", "hello", "he-llo", "h.e.l.l.o"} {
		got := dict.FindTerms(q, Strict())
		if !contains(got, "Hello") {
			t.Errorf("strict %q = %v, want Hello", q, got)
		}
		// Original casing preserved exactly as learned
		if len(got) > 0 && got[0] != "Hello" {
			t.Errorf("strict %q returned %q, want original spelling Hello", q, got[0])
		}
	}

	// Punctuation in learned text is a word delimiter
	dict.Learn("co-op", "co-op")
	if got := dict.FindTerms("op", Strict()); !contains(got, "co-op") {
		t.Errorf("strict 'op' = %v, want co-op indexed per hyphen-split word", got)
	}
	if got := dict.FindTerms("coop", Strict()); !contains(got, "co-op") {
		t.Errorf("strict 'coop' = %v, want co-op via compact form", got)
	}
}

func TestEmptyQuery(t *testing.T) {
	dict := New[string]()
	dict.Learn("hello", "hello")

	for _, q := range []string{"", "   ", "!!!", "-"} {
		if got := dict.FindTerms(q, Strict()); len(got) != 0 {
			t.Errorf("query %q = %v, want empty", q, got)
		}
		if got := dict.FindTerms(q, Fuzzy(5, TypoCorrection)); len(got) != 0 {
			t.Errorf("fuzzy query %q = %v, want empty", q, got)
		}
	}
}

func TestFuzzySearch(t *testing.T) {
	const fuzz = 5

	dict := New[string]()
	dict.Learn("Hello World", "Hello World")
	dict.Learn("World Is Mine", "World Is Mine")
	dict.Learn("miku miku ni shite ageru", "miku miku ni shite ageru")

	cases := []struct {
		query  string
		expect string
	}{
		{"helwor", "Hello World"},
		{"miminishiage", "miku miku ni shite ageru"},
		{"woismi", "World Is Mine"},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got := dict.FindTerms(tc.query, Fuzzy(fuzz, TypoCorrection))
			if len(got) == 0 {
				t.Fatalf("fuzzy %q found nothing", tc.query)
			}
			if !contains(got, tc.expect) {
				t.Errorf("fuzzy %q = %v, want to contain %q", tc.query, got, tc.expect)
			}
		})
	}
}

func TestFuzzyWordBoundaryPriority(t *testing.T) {
	dict := New[string]()
	dict.Learn("Hello World", "Hello World")
	dict.Learn("World Is Mine", "World Is Mine")

	// "helwor": after "hel" the 'w' starts a new word of the same term
	got := dict.FindTerms("helwor", Fuzzy(5, WordBoundary))
	if !contains(got, "Hello World") {
		t.Errorf("word-boundary fuzzy 'helwor' = %v, want Hello World", got)
	}
}

func TestFuzzyRestrictionSet(t *testing.T) {
	dict := New[string]()
	dict.Learn("Hello World", "Hello World")
	dict.Learn("Wombat", "Wombat")

	// After matching "hel" the restriction set only holds Hello World, so a
	// jump onto the wombat branch must not surface it.
	got := dict.FindTerms("helwo", Fuzzy(5, TypoCorrection))
	if contains(got, "Wombat") {
		t.Errorf("fuzzy 'helwo' = %v, Wombat is inconsistent with the matched prefix", got)
	}
	if !contains(got, "Hello World") {
		t.Errorf("fuzzy 'helwo' = %v, want Hello World", got)
	}
}

func TestFuzzyRootFallbackWithinTypoCorrection(t *testing.T) {
	dict := New[string]()
	dict.Learn("alpha beta", "alpha beta")

	// With budget 0 typo correction can never move the cursor, so the
	// last-hope root lookahead has to recover the jump onto "beta".
	got := dict.FindTerms("alpbet", Fuzzy(0, TypoCorrection))
	if !contains(got, "alpha beta") {
		t.Errorf("fuzzy(0, typo) 'alpbet' = %v, want root recovery to find alpha beta", got)
	}
}

func TestFuzzyFallbackToWordBoundary(t *testing.T) {
	dict := New[string]()
	dict.Learn("hello", "hello")
	dict.Learn("xyz", "xyz")

	// Under typo priority the 'x' drags the cursor onto the xyz branch,
	// which the restriction set then filters to nothing. The one-shot
	// word-boundary retry rejects that jump as inconsistent, absorbs the
	// 'x' as noise and finishes on the hello branch.
	got := dict.FindTerms("helxlo", Fuzzy(1, TypoCorrection))
	if !contains(got, "hello") {
		t.Errorf("fuzzy(1, typo) 'helxlo' = %v, want word-boundary retry to find hello", got)
	}
}

func TestFuzzyInconsistentMatchStaysEmpty(t *testing.T) {
	dict := New[string]()
	dict.Learn("alpha beta", "alpha beta")
	dict.Learn("beta gamma", "beta gamma")

	// After "alph" only "alpha beta" is still possible. The jump onto the
	// shared "beta" branch is allowed, but descending into "beta gamma"
	// leaves the restriction set with nothing, and word-boundary priority
	// never retries.
	if got := dict.FindTerms("alphbetagam", Fuzzy(5, WordBoundary)); len(got) != 0 {
		t.Errorf("fuzzy 'alphbetagam' = %v, want empty", got)
	}
}

func TestFuzzyGibberishDegradesToAllCandidates(t *testing.T) {
	dict := New[string]()
	dict.Learn("Hello World", "Hello World")

	// Characters that appear nowhere in the tree are all absorbed as noise,
	// so the cursor never leaves the root and every learned term survives
	// the restriction filter.
	got := dict.FindTerms("qqzyx", Fuzzy(5, TypoCorrection))
	if !contains(got, "Hello World") {
		t.Errorf("fuzzy 'qqzyx' = %v, want every candidate", got)
	}
}

func TestTrailingMismatchIsAbsorbed(t *testing.T) {
	dict := New[string]()
	dict.Learn("hello", "hello")

	// A mismatch on the final character leaves the cursor in place, so the
	// prefix collection still applies from there.
	if got := dict.FindTerms("hellx", Prefix(10)); !contains(got, "hello") {
		t.Errorf("prefix(10) 'hellx' = %v, want hello with trailing mismatch absorbed", got)
	}
	if got := dict.FindTerms("hellx", Strict()); len(got) != 0 {
		t.Errorf("strict 'hellx' = %v, want empty", got)
	}
}

type app struct {
	Name string
	Path string
}

func TestGenericPayload(t *testing.T) {
	dict := New[app]()
	photoshop := app{Name: "Adobe Photoshop", Path: "/apps/photoshop"}
	booth := app{Name: "Photo Booth", Path: "/apps/booth"}
	dict.Learn(photoshop, photoshop.Name)
	dict.Learn(booth, booth.Name)

	got := dict.FindTerms("phosh", Fuzzy(3, TypoCorrection))
	found := false
	for _, a := range got {
		if a == photoshop {
			found = true
		}
	}
	if !found {
		t.Errorf("fuzzy 'phosh' = %v, want the photoshop payload", got)
	}
}

func TestAllLearnedTermsAreFindable(t *testing.T) {
	terms := []string{
		"Photos", "Photo Booth", "Adobe Photoshop", "Photo Magic",
		"Hello World", "co-op mode", "utf8 tools",
	}
	dict := New[string]()
	for _, term := range terms {
		dict.Learn(term, term)
	}

	for _, term := range terms {
		got := dict.FindTerms(term, Strict())
		if !contains(got, term) {
			t.Errorf("strict lookup of learned term %q = %v, want itself", term, got)
		}
	}
}
