package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Loader reads a line-oriented term list and feeds it into a Store.
// One term per line, original casing and spelling preserved; blank lines
// are skipped.
type Loader struct {
	maxTerms int
}

// LoadStats summarizes a completed load.
type LoadStats struct {
	Terms   int
	Skipped int
	Elapsed time.Duration
}

// TermsPerSecond returns the observed learn throughput.
func (s LoadStats) TermsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Terms) / s.Elapsed.Seconds()
}

// NewLoader creates a loader. maxTerms caps how many terms are learned;
// 0 means no cap.
func NewLoader(maxTerms int) *Loader {
	return &Loader{maxTerms: maxTerms}
}

// LoadFile loads the term list at path into store.
func (l *Loader) LoadFile(path string, store *Store) (LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("failed to open term list %s: %w", path, err)
	}
	defer file.Close()

	stats, err := l.Load(file, store)
	if err != nil {
		return stats, fmt.Errorf("failed to read term list %s: %w", path, err)
	}
	return stats, nil
}

// Load learns one term per line from r into store.
func (l *Loader) Load(r io.Reader, store *Store) (LoadStats, error) {
	start := time.Now()
	stats := LoadStats{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			stats.Skipped++
			continue
		}
		if l.maxTerms > 0 && stats.Terms >= l.maxTerms {
			log.Debugf("Term cap of %d reached, ignoring the rest", l.maxTerms)
			break
		}
		store.Learn(line)
		stats.Terms++
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}

	stats.Elapsed = time.Since(start)
	log.Debugf("Loaded %d terms in %v (%.0f terms/sec), skipped %d blanks",
		stats.Terms, stats.Elapsed, stats.TermsPerSecond(), stats.Skipped)
	return stats, nil
}
