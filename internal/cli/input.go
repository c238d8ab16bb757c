// Package cli handles cmd line input and lookups for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/termserve/internal/utils"
	"github.com/bastiangx/termserve/pkg/dictionary"
	"github.com/bastiangx/termserve/pkg/index"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var termStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// InputHandler processes user queries from stdin, resolving each line
// against the store. It accepts flags to control behavior such as minimum
// and maximum query length, result limits, and filtering options.
type InputHandler struct {
	store          *dictionary.Store
	kind           index.SearchKind
	minQueryLength int
	maxQueryLength int
	resultLimit    int
	noFilter       bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(store *dictionary.Store, kind index.SearchKind, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		store:          store,
		kind:           kind,
		minQueryLength: minLength,
		maxQueryLength: maxLength,
		resultLimit:    limit,
		noFilter:       noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and passes the
// trimmed input to handleInput() for processing. Lines starting with ':'
// switch the search mode in place. Loop terminates if an error occurs while
// reading from stdin.
func (h *InputHandler) Start() error {
	log.Print("TermServe CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type an abbreviation and press Enter to see matching terms (Ctrl+C to exit):")
	log.Printf("mode commands: :strict | :prefix <depth> | :fuzzy <budget> <word|typo> (now: %s)", h.kind)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			h.handleModeCommand(line)
			continue
		}
		h.handleInput(line)
	}
}

// handleModeCommand switches the active SearchKind from a ':' command.
func (h *InputHandler) handleModeCommand(line string) {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		log.Errorf("Empty mode command")
		return
	}

	depth, budget := 0, 0
	priority := "typo"
	if len(fields) > 1 {
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			log.Errorf("Bad numeric argument in %q: %v", line, err)
			return
		}
		depth, budget = n, n
	}
	if len(fields) > 2 {
		priority = fields[2]
	}

	kind, err := index.ParseKind(fields[0], depth, budget, priority)
	if err != nil {
		log.Errorf("Mode switch failed: %v", err)
		return
	}
	h.kind = kind
	log.Printf("search mode is now: %s", h.kind)
}

// handleInput processes a single query. It validates the query's length and
// content, then asks the store for matching terms. Results are formatted and
// printed to the log.
func (h *InputHandler) handleInput(query string) {
	if len(query) < h.minQueryLength {
		log.Errorf("Query too short: %s", query)
		return
	}

	if len(query) > h.maxQueryLength {
		log.Errorf("Query too long: %s", query)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(query) {
			log.Warnf("No results found for query: '%s'", query)
			return
		}
	} else {
		log.Debug("Input filtering disabled - all queries pass through")
	}

	start := time.Now()

	log.Debug("Processing request for", "query", query, "kind", h.kind.String())
	terms := h.store.FindTerms(query, h.kind)

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(terms) == 0 {
		log.Warnf("No terms found for query: '%s'", query)
		return
	}

	if len(terms) > h.resultLimit && h.resultLimit > 0 {
		terms = terms[:h.resultLimit]
	}

	log.Printf("Found %d terms for query '%s' (%s):", len(terms), query, h.kind)
	for i, t := range terms {
		log.Printf("%2d. %s", i+1, termStyle.Render(fmt.Sprintf("%-40s", t)))
	}
}
