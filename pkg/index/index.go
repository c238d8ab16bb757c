// Package index is the core, providing the character trie, term interning and
// the strict/prefix/fuzzy traversals used to resolve abbreviation queries.
package index

import (
	"unicode"

	"github.com/bastiangx/termserve/internal/utils"
)

// termID is an opaque handle into the dictionary's interning table.
// Nodes store ids instead of values, so a term indexed along many paths
// is held exactly once.
type termID uint32

// node is a single point in the trie. Its path from the root spells a
// normalized prefix; terms holds every term that terminates here.
type node struct {
	children map[rune]*node
	terms    map[termID]struct{}
}

func newNode() *node {
	return &node{}
}

// child returns the child node for r, creating it when missing.
func (n *node) child(r rune) *node {
	if n.children == nil {
		n.children = make(map[rune]*node)
	}
	c, ok := n.children[r]
	if !ok {
		c = newNode()
		n.children[r] = c
	}
	return c
}

func (n *node) addTerm(id termID) {
	if n.terms == nil {
		n.terms = make(map[termID]struct{})
	}
	n.terms[id] = struct{}{}
}

// Dict indexes terms of any comparable payload type. The zero value is not
// usable; create one with New. Learning mutates shared structure and lookup
// only reads it, so concurrent use needs external exclusion.
type Dict[T comparable] struct {
	root   *node
	values []T
	ids    map[T]termID
}

// New returns an empty dictionary.
func New[T comparable]() *Dict[T] {
	return &Dict[T]{
		root: newNode(),
		ids:  make(map[T]termID),
	}
}

// intern returns the id for value, assigning one on first sight.
// Learning the same value twice therefore shares a single id and the
// per-node term sets absorb the duplicate.
func (d *Dict[T]) intern(value T) termID {
	if id, ok := d.ids[value]; ok {
		return id
	}
	id := termID(len(d.values))
	d.values = append(d.values, value)
	d.ids[value] = id
	return id
}

// learnWord walks the normalized path for word from the root, creating
// missing nodes, and returns the terminal node. Non-alphanumeric runes are
// skipped, so passing a full term text yields its compact form path.
func (d *Dict[T]) learnWord(word string) *node {
	n := d.root
	for _, r := range word {
		if utils.IsIndexable(r) {
			n = n.child(unicode.ToLower(r))
		}
	}
	return n
}

// Learn indexes value under text. The text is split into words at every run
// of non-alphanumeric runes; the term is recorded at the end of each word's
// path and at the end of the whole text's compact form path. Re-learning an
// already-present term is a no-op. The tree only ever grows.
func (d *Dict[T]) Learn(value T, text string) {
	id := d.intern(value)
	for _, word := range utils.SplitWords(text) {
		d.learnWord(word).addTerm(id)
	}
	d.learnWord(text).addTerm(id)
}

// TermCount returns the number of distinct terms learned so far.
func (d *Dict[T]) TermCount() int {
	return len(d.values)
}
