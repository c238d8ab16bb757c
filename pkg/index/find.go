package index

import (
	"github.com/bastiangx/termserve/internal/utils"
)

// collect gathers term ids from n and its descendants into found.
// depth bounds how many levels below n are visited; a negative depth
// means unbounded.
func (n *node) collect(depth int, found map[termID]struct{}) {
	for id := range n.terms {
		found[id] = struct{}{}
	}
	if depth == 0 {
		return
	}
	for _, child := range n.children {
		child.collect(depth-1, found)
	}
}

// seek is a bounded depth-first hunt below n for a node whose incoming edge
// is r. The budget is decremented per hop and the first hit wins; there is
// no shortest-path guarantee.
func (n *node) seek(r rune, budget int) *node {
	if budget <= 0 {
		return nil
	}
	for edge, child := range n.children {
		if edge == r {
			return child
		}
		if hit := child.seek(r, budget-1); hit != nil {
			return hit
		}
	}
	return nil
}

// FindTerms resolves query against the dictionary under the given kind.
// The query is normalized exactly like learned text. An empty result means
// no match; it is never an error. Results are deduplicated but carry no
// ordering.
//
// In fuzzy mode a mismatch before the last character triggers recovery:
// the first mismatch captures a restriction set (everything reachable from
// the mismatch point), then the cursor either jumps to a new word branch at
// the root, jumps to a nearby descendant within the budget, or absorbs the
// character as noise. A TypoCorrection search that comes up empty is retried
// once with WordBoundary priority.
func (d *Dict[T]) FindTerms(query string, kind SearchKind) []T {
	runes := []rune(utils.Normalize(query))
	if len(runes) == 0 {
		return nil
	}

	now := d.root
	last := len(runes) - 1
	var restrict map[termID]struct{}

	for i, r := range runes {
		if next, ok := now.children[r]; ok {
			now = next
			continue
		}
		if i == last {
			// A trailing mismatch is absorbed for every kind; collection
			// happens at the node the walk reached.
			break
		}
		if kind.mode != modeFuzzy {
			return nil
		}

		// What we would have matched had the query continued as typed.
		// Captured once per search.
		if restrict == nil {
			restrict = make(map[termID]struct{})
			now.collect(-1, restrict)
		}

		switch kind.priority {
		case WordBoundary:
			if alt := d.root.seek(r, 1); alt != nil {
				candidates := make(map[termID]struct{})
				alt.collect(-1, candidates)
				if intersects(candidates, restrict) {
					now = alt
					continue
				}
			}
			// No consistent word branch: absorb r as noise.
		case TypoCorrection:
			if alt := now.seek(r, kind.budget); alt != nil {
				now = alt
			} else if alt := d.root.seek(r, 1); alt != nil {
				now = alt
			}
			// Neither found: absorb r as noise.
		}
	}

	depth := 0
	switch kind.mode {
	case modePrefix:
		depth = kind.depth
	case modeFuzzy:
		depth = -1
	}

	found := make(map[termID]struct{})
	now.collect(depth, found)

	result := make([]T, 0, len(found))
	for id := range found {
		if len(restrict) > 0 {
			if _, ok := restrict[id]; !ok {
				continue
			}
		}
		result = append(result, d.values[id])
	}

	if len(result) == 0 && kind.mode == modeFuzzy && kind.priority == TypoCorrection {
		return d.FindTerms(query, Fuzzy(kind.budget, WordBoundary))
	}
	return result
}

func intersects(a, b map[termID]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for id := range a {
		if _, ok := b[id]; ok {
			return true
		}
	}
	return false
}
