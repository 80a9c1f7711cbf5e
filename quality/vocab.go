// Package quality evaluates weighted FAIR+C metrics over DCAT metadata
// graphs, aggregates them into rated quality results, and merges SHACL
// compliance into the profile's designated compliance metric.
package quality

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/c360studio/dcatqa/telemetry"
)

// Controlled vocabularies the metric policies match against. Each name maps
// to a <name>.jsonl file in the vocabularies directory.
const (
	VocabFileTypes       = "file_types"
	VocabMediaTypes      = "media_types"
	VocabNonProprietary  = "non_proprietary"
	VocabMachineReadable = "machine_readable"
	VocabLicenses        = "licenses"
	VocabAccessRights    = "access_rights"
)

// VocabularyItem is one entry of a controlled vocabulary. Value is the
// canonical identifier (usually an IRI); Label is the short human form many
// catalogs use instead.
type VocabularyItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// vocabStore caches loaded vocabularies per name. A vocabulary that cannot
// be loaded caches as empty, so a missing file degrades matching instead of
// failing every metric that needs it.
type vocabStore struct {
	mu     sync.RWMutex
	dir    string
	cache  map[string][]VocabularyItem
	logger *slog.Logger
}

var store = &vocabStore{
	dir:    "vocabularies",
	cache:  make(map[string][]VocabularyItem),
	logger: slog.Default(),
}

// SetVocabularyDir points the vocabulary store at a directory and drops the
// cache.
func SetVocabularyDir(dir string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.dir = dir
	store.cache = make(map[string][]VocabularyItem)
}

// LoadVocabulary returns the items of a named vocabulary, loading and
// caching on first use. Load failures return an empty vocabulary.
func LoadVocabulary(name string) []VocabularyItem {
	store.mu.RLock()
	items, ok := store.cache[name]
	store.mu.RUnlock()
	if ok {
		return items
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if items, ok := store.cache[name]; ok {
		return items
	}
	items, err := readVocabulary(filepath.Join(store.dir, name+".jsonl"))
	if err != nil {
		store.logger.Warn("vocabulary unavailable",
			slog.String("vocabulary", name),
			slog.String("error", err.Error()))
		telemetry.VocabularyLoadFailures.WithLabelValues(name).Inc()
		items = []VocabularyItem{}
	}
	store.cache[name] = items
	return items
}

// readVocabulary parses a JSONL vocabulary file, one item per line. Blank
// lines and malformed records are skipped.
func readVocabulary(path string) ([]VocabularyItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var items []VocabularyItem
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var item VocabularyItem
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			continue
		}
		if item.Value != "" || item.Label != "" {
			items = append(items, item)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// MatchesVocabulary reports whether any candidate value appears in the named
// vocabulary, matching either the canonical value or the label, ignoring
// case and surrounding whitespace. Blank candidates never match.
func MatchesVocabulary(values []string, name string) bool {
	items := LoadVocabulary(name)
	if len(items) == 0 {
		return false
	}
	for _, v := range values {
		candidate := strings.ToLower(strings.TrimSpace(v))
		if candidate == "" {
			continue
		}
		for _, item := range items {
			if candidate == strings.ToLower(strings.TrimSpace(item.Value)) ||
				candidate == strings.ToLower(strings.TrimSpace(item.Label)) {
				return true
			}
		}
	}
	return false
}
