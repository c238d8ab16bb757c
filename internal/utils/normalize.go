package utils

import (
	"strings"
	"unicode"
)

// IsIndexable reports whether a rune may appear as an edge label in the
// term index. Only letters and digits are indexed; everything else is
// treated as a delimiter.
func IsIndexable(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Normalize lowercases s and strips every non-alphanumeric rune.
// Learned text and queries go through the same normalization, so the
// result of Normalize is exactly the path a string occupies in the index.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsIndexable(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// SplitWords splits s into words at every run of non-alphanumeric runes.
// Delimiters are discarded and never produce empty words.
func SplitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !IsIndexable(r)
	})
}
