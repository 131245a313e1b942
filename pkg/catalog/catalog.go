// Package catalog indexes .promptspec.md files found in spec directories.
// Each spec becomes an Entry with scan-derived metadata and a content hash
// used for cache invalidation. Indexing is best-effort: unreadable or
// oversized files are skipped, never fatal.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/promptspec/promptspec/pkg/events"
	"github.com/promptspec/promptspec/pkg/scanner"
)

// SpecSuffix is the filename suffix that marks a prompt spec.
const SpecSuffix = ".promptspec.md"

// maxSpecSize guards the walker against accidentally indexing large
// non-spec files; hand-written specs are a few KB.
const maxSpecSize = 1 << 20

// Entry is the indexed metadata for a single spec file.
type Entry struct {
	Path              string    `json:"path"`
	Title             string    `json:"title"`
	ContentHash       string    `json:"content_hash"`
	Variables         []string  `json:"variables,omitempty"`
	ExecutionStrategy string    `json:"execution_strategy,omitempty"`
	HasTools          bool      `json:"has_tools"`
	IndexedAt         time.Time `json:"indexed_at"`
}

// ShortName returns the entry's filename without the spec suffix.
func (e Entry) ShortName() string {
	return ShortName(e.Path)
}

// ShortName returns a path's filename without the .promptspec.md suffix.
func ShortName(path string) string {
	name := filepath.Base(path)
	if strings.HasSuffix(name, SpecSuffix) {
		return strings.TrimSuffix(name, SpecSuffix)
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ContentHash returns the SHA-256 hex digest of spec text.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// FromText builds an Entry from already-loaded spec text. The title falls
// back to the filename stem when the spec has no heading.
func FromText(path, text string, opts scanner.Options) Entry {
	meta := scanner.ScanWithOptions(text, opts)

	title := meta.Title
	if title == "" {
		title = ShortName(path)
	}
	variables := make([]string, 0, len(meta.Inputs))
	for _, in := range meta.Inputs {
		variables = append(variables, in.Name)
	}
	strategy := ""
	if meta.Execution != nil {
		if s, ok := meta.Execution["type"].(string); ok {
			strategy = s
		}
	}

	return Entry{
		Path:              path,
		Title:             title,
		ContentHash:       ContentHash(text),
		Variables:         variables,
		ExecutionStrategy: strategy,
		HasTools:          len(meta.ToolNames) > 0,
		IndexedAt:         time.Now().UTC(),
	}
}

// Indexer scans spec directories, reusing cached entries when the content
// hash still matches. Cache and Bus are both optional.
type Indexer struct {
	Cache       *Cache
	Bus         events.EventBus
	ScanOptions scanner.Options
}

// Index builds an Entry for a single spec file.
func (ix *Indexer) Index(path string) (Entry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if info, err := os.Stat(abs); err == nil && info.Size() > maxSpecSize {
		return Entry{}, fs.ErrInvalid
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return Entry{}, err
	}
	text := string(data)

	hash := ContentHash(text)
	if ix.Cache != nil {
		if entry, ok := ix.Cache.Lookup(abs, hash); ok {
			return entry, nil
		}
	}

	entry := FromText(abs, text, ix.ScanOptions)
	if ix.Cache != nil {
		// Cache write failures only cost a rescan next time.
		_ = ix.Cache.Store(entry)
	}
	return entry, nil
}

// ScanDirs recursively indexes every .promptspec.md file under the given
// directories. Missing directories and unreadable files are skipped;
// duplicate resolved paths are indexed once.
func (ix *Indexer) ScanDirs(dirs []string) []Entry {
	ix.publish(events.NewEvent(events.EventCatalogScanStart, events.ScanEventData{Dirs: dirs}))

	var entries []Entry
	seen := make(map[string]bool)

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), SpecSuffix) {
				return nil
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			if seen[abs] {
				return nil
			}
			seen[abs] = true

			entry, err := ix.Index(abs)
			if err != nil {
				ix.publish(events.NewEvent(events.EventSpecSkipped,
					events.SpecEventData{Path: abs, Reason: err.Error()}))
				return nil
			}
			entries = append(entries, entry)
			ix.publish(events.NewEvent(events.EventSpecIndexed,
				events.SpecEventData{Path: entry.Path, Title: entry.Title}))
			return nil
		})
	}

	ix.publish(events.NewEvent(events.EventCatalogScanEnd, events.ScanEventData{Dirs: dirs, Count: len(entries)}))
	return entries
}

func (ix *Indexer) publish(event events.Event) {
	if ix.Bus != nil {
		ix.Bus.Publish(event)
	}
}
