package server

import (
	"io"
	"os"
	"time"

	"github.com/bastiangx/termserve/internal/utils"
	"github.com/bastiangx/termserve/pkg/config"
	"github.com/bastiangx/termserve/pkg/dictionary"
	"github.com/bastiangx/termserve/pkg/index"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// configReloadInterval is the number of requests between config re-reads.
const configReloadInterval = 50

// Server handles the IPC for term lookups
type Server struct {
	store      *dictionary.Store
	config     *config.Config
	configPath string
	dec        *msgpack.Decoder
	enc        *msgpack.Encoder

	requestCount int
}

// NewServer creates a lookup server speaking msgpack over stdin/stdout
func NewServer(store *dictionary.Store, cfg *config.Config, configPath string) *Server {
	return &Server{
		store:      store,
		config:     cfg,
		configPath: configPath,
		dec:        msgpack.NewDecoder(os.Stdin),
		enc:        msgpack.NewEncoder(os.Stdout),
	}
}

// NewServerWithIO creates a server on custom streams, used by tests and
// embedding clients.
func NewServerWithIO(store *dictionary.Store, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		store:      store,
		config:     cfg,
		configPath: configPath,
		dec:        msgpack.NewDecoder(r),
		enc:        msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	s.sendResponse(map[string]string{"status": "ready"})

	for {
		var request QueryRequest
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest routes a decoded request
func (s *Server) handleRequest(request QueryRequest) {
	s.requestCount++
	if s.requestCount%configReloadInterval == 0 {
		s.reloadConfig()
	}

	switch request.Action {
	case "":
		s.handleQuery(request)
	case "get_info":
		s.handleInfo(request)
	case "learn":
		s.handleLearn(request)
	default:
		s.sendError(request.ID, "Unknown action: "+request.Action, 400)
	}
}

// handleQuery processes a lookup request. It validates the query, resolves
// the search kind from the request or config defaults, asks the store and
// sends back every matched term up to the limit.
func (s *Server) handleQuery(request QueryRequest) {
	query := request.Query

	if query == "" {
		s.sendError(request.ID, "Missing 'q' parameter", 400)
		log.Debug("Query is empty in request")
		return
	}

	if len(query) < s.config.Server.MinQuery {
		s.sendError(request.ID, "Query is too short", 400)
		return
	}

	if len(query) > s.config.Server.MaxQuery {
		s.sendError(request.ID, "Query exceeds maximum length", 400)
		return
	}

	if s.config.Server.EnableFilter && !utils.IsValidInput(query) {
		// Filtered noise gets an empty result, not an error.
		s.sendResponse(QueryResponse{ID: request.ID, Terms: []string{}})
		return
	}

	kind, err := s.resolveKind(request)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	terms := s.store.FindTerms(query, kind)
	elapsed := time.Since(start)

	if len(terms) > limit {
		terms = terms[:limit]
	}
	if terms == nil {
		terms = []string{}
	}

	s.sendResponse(QueryResponse{
		ID:        request.ID,
		Terms:     terms,
		Count:     len(terms),
		TimeTaken: elapsed.Microseconds(),
	})
}

// resolveKind builds the SearchKind for a request, falling back to the
// configured defaults for any field the client left out.
func (s *Server) resolveKind(request QueryRequest) (index.SearchKind, error) {
	search := s.config.Search

	mode := request.Kind
	if mode == "" {
		mode = search.Mode
	}
	depth := search.PrefixDepth
	if request.Depth != nil {
		depth = *request.Depth
	}
	budget := search.FuzzBudget
	if request.Budget != nil {
		budget = *request.Budget
	}
	priority := request.Priority
	if priority == "" {
		priority = search.Priority
	}

	return index.ParseKind(mode, depth, budget, priority)
}

func (s *Server) handleInfo(request QueryRequest) {
	stats := s.store.Stats()
	s.sendResponse(InfoResponse{
		ID:            request.ID,
		Status:        "ok",
		Terms:         stats["terms"],
		CachedQueries: stats["cachedQueries"],
		CacheHits:     stats["cacheHits"],
	})
}

func (s *Server) handleLearn(request QueryRequest) {
	if request.Term == "" {
		s.sendResponse(LearnResponse{
			ID:     request.ID,
			Status: "error",
			Error:  "missing 'term' field",
		})
		return
	}

	s.store.Learn(request.Term)
	log.Debugf("Learned term at runtime: %q", request.Term)

	s.sendResponse(LearnResponse{
		ID:     request.ID,
		Status: "ok",
		Terms:  s.store.TermCount(),
	})
}

// reloadConfig re-reads the TOML config so long-running sessions pick up
// server parameter changes without restart.
func (s *Server) reloadConfig() {
	if s.configPath == "" {
		return
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("Config reload failed, keeping current settings: %v", err)
		return
	}
	s.config = cfg
	log.Debugf("Config reloaded after %d requests", s.requestCount)
}

// sendResponse encodes response as msgpack onto the output stream.
func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(QueryError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
