// Package dictionary wraps the core index with the pieces a running service
// needs: a line-oriented term loader, a single-writer/multi-reader store and
// a query-result cache.
package dictionary

import (
	"sync"

	"github.com/bastiangx/termserve/internal/utils"
	"github.com/bastiangx/termserve/pkg/index"
)

// defaultMaxCachedQueries bounds the query cache before LRU eviction kicks in.
const defaultMaxCachedQueries = 4096

// Store is a string-payload dictionary safe for concurrent use.
// The core index has no locking of its own since learning mutates the
// child maps that lookups walk, so every operation goes through an RWMutex
// here. Query results are memoized until the next Learn.
type Store struct {
	mu    sync.RWMutex
	dict  *index.Dict[string]
	cache *QueryCache
}

// NewStore returns an empty store with a default-sized query cache.
func NewStore() *Store {
	return &Store{
		dict:  index.New[string](),
		cache: NewQueryCache(defaultMaxCachedQueries),
	}
}

// Learn indexes a term under its own text and drops all cached results.
func (s *Store) Learn(term string) {
	s.mu.Lock()
	s.dict.Learn(term, term)
	s.mu.Unlock()
	s.cache.Invalidate()
}

// FindTerms resolves query under kind, serving repeated queries from cache.
func (s *Store) FindTerms(query string, kind index.SearchKind) []string {
	key := kind.String() + ":" + utils.Normalize(query)
	if result, ok := s.cache.Get(key); ok {
		return result
	}

	s.mu.RLock()
	result := s.dict.FindTerms(query, kind)
	s.mu.RUnlock()

	s.cache.Put(key, result)
	return result
}

// TermCount returns the number of distinct learned terms.
func (s *Store) TermCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dict.TermCount()
}

// Stats returns counters about the store and its cache.
func (s *Store) Stats() map[string]int {
	stats := map[string]int{
		"terms": s.TermCount(),
	}
	for k, v := range s.cache.Stats() {
		stats[k] = v
	}
	return stats
}
