package catalog

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCacheStoreLookup(t *testing.T) {
	cache := openTestCache(t)

	entry := Entry{
		Path:        "/specs/a.promptspec.md",
		Title:       "A",
		ContentHash: "abc123",
		IndexedAt:   time.Now().UTC(),
	}
	if err := cache.Store(entry); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, ok := cache.Lookup(entry.Path, "abc123")
	if !ok {
		t.Fatal("Lookup returned false for matching hash")
	}
	if got.Title != "A" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestCacheLookupHashMismatch(t *testing.T) {
	cache := openTestCache(t)

	entry := Entry{Path: "/specs/a.promptspec.md", ContentHash: "abc123"}
	if err := cache.Store(entry); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if _, ok := cache.Lookup(entry.Path, "different"); ok {
		t.Error("Lookup returned stale entry for changed hash")
	}
}

func TestCacheLookupMissing(t *testing.T) {
	cache := openTestCache(t)
	if _, ok := cache.Lookup("/specs/none.promptspec.md", "x"); ok {
		t.Error("Lookup returned entry for unknown path")
	}
}

func TestCacheStoreOverwrites(t *testing.T) {
	cache := openTestCache(t)

	path := "/specs/a.promptspec.md"
	cache.Store(Entry{Path: path, Title: "Old", ContentHash: "h1"})
	cache.Store(Entry{Path: path, Title: "New", ContentHash: "h2"})

	got, ok := cache.Lookup(path, "h2")
	if !ok || got.Title != "New" {
		t.Errorf("got %+v, ok=%v", got, ok)
	}

	entries, err := cache.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Entries len = %d, want 1", len(entries))
	}
}

func TestCacheEntries(t *testing.T) {
	cache := openTestCache(t)

	cache.Store(Entry{Path: "/specs/a.promptspec.md", ContentHash: "h1"})
	cache.Store(Entry{Path: "/specs/b.promptspec.md", ContentHash: "h2"})

	entries, err := cache.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Entries len = %d, want 2", len(entries))
	}
}
