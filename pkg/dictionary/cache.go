package dictionary

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// QueryCache memoizes query results keyed by a kind signature plus the
// normalized query. Entries are evicted least-recently-used once maxEntries
// is reached, and the whole cache is dropped whenever the dictionary learns
// a new term.
type QueryCache struct {
	trie        *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	maxEntries  int
	mu          sync.Mutex
}

// NewQueryCache creates a cache holding at most maxEntries results.
func NewQueryCache(maxEntries int) *QueryCache {
	return &QueryCache{
		trie:       patricia.NewTrie(),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns the cached result for key, if any.
func (qc *QueryCache) Get(key string) ([]string, bool) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	item := qc.trie.Get(patricia.Prefix(key))
	if item == nil {
		return nil, false
	}
	qc.markAccessed(key)
	qc.hits++
	return item.([]string), true
}

// Put stores a result for key, evicting the LRU entry when full.
func (qc *QueryCache) Put(key string, result []string) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	if len(qc.accessTime) >= qc.maxEntries {
		qc.evictLRU()
	}
	qc.trie.Set(patricia.Prefix(key), result)
	qc.markAccessed(key)
}

// Invalidate drops every cached result.
func (qc *QueryCache) Invalidate() {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	qc.trie = patricia.NewTrie()
	qc.accessTime = make(map[string]int64, qc.maxEntries)
}

// Stats returns cache counters.
func (qc *QueryCache) Stats() map[string]int {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	return map[string]int{
		"cachedQueries": len(qc.accessTime),
		"maxCached":     qc.maxEntries,
		"cacheHits":     int(qc.hits),
	}
}

func (qc *QueryCache) markAccessed(key string) {
	qc.accessCount++
	qc.accessTime[key] = qc.accessCount
}

func (qc *QueryCache) evictLRU() {
	var oldestKey string
	var oldestTime int64 = 9223372036854775807

	for key, accessTime := range qc.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestKey = key
		}
	}

	if oldestKey != "" {
		qc.trie.Delete(patricia.Prefix(oldestKey))
		delete(qc.accessTime, oldestKey)
		log.Debugf("Evicted query '%s' from cache", oldestKey)
	}
}
