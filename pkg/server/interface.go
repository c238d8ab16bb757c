/*
Package server implements msgpack IPC for abbreviation search services.

The server package provides a minimal interface for term lookup using msgpack
serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports query requests, index
management ops, and config updates. Messages are processed synchronously with
timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message contains
an ID field and other fields based on the operation type.

Query requests use mainly this structure:

	{"id": "req_001", "q": "phosh", "k": "fuzzy", "f": 3, "p": "typo", "l": 24}

The search kind field accepts "strict", "prefix" and "fuzzy"; "d" carries the
prefix depth and "f" the fuzz budget. Fields left out fall back to the
[search] section of the TOML config. The server responds with the matched
terms, deduplicated and in no particular order:

	{"id": "req_001", "t": ["Photoshop"], "c": 1, "us": 145}

Index management enables runtime operations:

	{"id": "idx_001", "action": "get_info"}
	{"id": "idx_002", "action": "learn", "term": "Photo Booth"}

Response structures include status information and error details when an op
fails. The server maintains request counts for periodic config reloading.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing
latency by ~40 to 70% in most cases.
*/
package server

// QueryRequest - a single lookup or management request
type QueryRequest struct {
	ID       string `msgpack:"id"`
	Query    string `msgpack:"q,omitempty"`
	Kind     string `msgpack:"k,omitempty"` // "strict", "prefix", "fuzzy"
	Depth    *int   `msgpack:"d,omitempty"` // prefix collection depth
	Budget   *int   `msgpack:"f,omitempty"` // fuzz budget
	Priority string `msgpack:"p,omitempty"` // "word" or "typo"
	Limit    int    `msgpack:"l,omitempty"`
	Action   string `msgpack:"action,omitempty"` // "get_info", "learn"
	Term     string `msgpack:"term,omitempty"`   // for "learn"
}

// QueryResponse - matched terms for a query
type QueryResponse struct {
	ID        string   `msgpack:"id"`
	Terms     []string `msgpack:"t"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"us"`
}

// InfoResponse - index statistics
type InfoResponse struct {
	ID            string `msgpack:"id"`
	Status        string `msgpack:"status"`
	Terms         int    `msgpack:"terms"`
	CachedQueries int    `msgpack:"cached_queries"`
	CacheHits     int    `msgpack:"cache_hits"`
}

// LearnResponse - result of a runtime learn action
type LearnResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
	Terms  int    `msgpack:"terms,omitempty"`
}

// QueryError holds basic error information for failed requests
type QueryError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
