package index

import (
	"fmt"
	"strconv"
)

// Priority selects how fuzzy traversal recovers from a mismatched character.
type Priority int

const (
	// WordBoundary treats an unexpected character as the start of a new word.
	WordBoundary Priority = iota
	// TypoCorrection treats an unexpected character as a typo and searches
	// nearby descendants first. Falls back to WordBoundary when nothing is
	// found, thus may be slower, but more precise.
	TypoCorrection
)

func (p Priority) String() string {
	switch p {
	case WordBoundary:
		return "word"
	case TypoCorrection:
		return "typo"
	default:
		return "unknown"
	}
}

// ParsePriority parses the wire/CLI spelling of a fuzzy priority.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "word", "wordboundary":
		return WordBoundary, nil
	case "typo", "typocorrection":
		return TypoCorrection, nil
	default:
		return WordBoundary, fmt.Errorf("unknown fuzzy priority %q", s)
	}
}

type searchMode int

const (
	modeStrict searchMode = iota
	modePrefix
	modeFuzzy
)

// SearchKind selects the traversal behavior for FindTerms.
// Build one with Strict, Prefix or Fuzzy.
type SearchKind struct {
	mode     searchMode
	depth    int
	budget   int
	priority Priority
}

// Strict matches only terms stored exactly at the query's terminal node.
func Strict() SearchKind {
	return SearchKind{mode: modeStrict}
}

// Prefix matches terms at the terminal node and up to depth levels below it.
// Prefix(0) behaves like Strict.
func Prefix(depth int) SearchKind {
	if depth < 0 {
		depth = 0
	}
	return SearchKind{mode: modePrefix, depth: depth}
}

// Fuzzy matches with mismatch recovery. The budget bounds how far typo
// correction may wander from the mismatch point.
func Fuzzy(budget int, priority Priority) SearchKind {
	if budget < 0 {
		budget = 0
	}
	return SearchKind{mode: modeFuzzy, budget: budget, priority: priority}
}

// String renders a stable, compact signature for the kind, e.g. "strict",
// "prefix:10" or "fuzzy:3:typo". Used for cache keys and logging.
func (k SearchKind) String() string {
	switch k.mode {
	case modePrefix:
		return "prefix:" + strconv.Itoa(k.depth)
	case modeFuzzy:
		return "fuzzy:" + strconv.Itoa(k.budget) + ":" + k.priority.String()
	default:
		return "strict"
	}
}

// ParseKind assembles a SearchKind from its wire representation.
// depth and budget are only consulted for the modes that use them.
func ParseKind(mode string, depth, budget int, priority string) (SearchKind, error) {
	switch mode {
	case "strict", "":
		return Strict(), nil
	case "prefix":
		return Prefix(depth), nil
	case "fuzzy":
		pri, err := ParsePriority(priority)
		if err != nil {
			return SearchKind{}, err
		}
		return Fuzzy(budget, pri), nil
	default:
		return SearchKind{}, fmt.Errorf("unknown search mode %q", mode)
	}
}
