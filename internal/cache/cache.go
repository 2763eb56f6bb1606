// Package cache memoizes sorted directory listings. It is the only state
// shared across tabs: every pane resolves its entries through here by path,
// so an invalidation from one tab is observed by all of them.
package cache

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"pillar/internal/errors"
	"pillar/internal/log"
	"pillar/pkg/types"

	"github.com/gobwas/glob"
)

// DirectoryListing is the fully materialized, ordered contents of one
// directory. A listing is either absent from the cache or complete; there
// are no partial listings. Unreadable directories get a marker listing with
// zero entries instead of an error.
type DirectoryListing struct {
	Path       string
	Entries    []types.PathEntry
	ReadAt     time.Time
	Unreadable bool
	Err        error
}

// Options control which children appear in listings.
type Options struct {
	ShowHidden bool
	Ignore     []glob.Glob
}

// Cache lazily lists and sorts directory children, memoizing results until
// invalidated. All methods run on the caller's goroutine; the event loop is
// single-threaded, so no locking is needed.
type Cache struct {
	lister   Lister
	opts     Options
	listings map[string]*DirectoryListing
	now      func() time.Time
}

// New creates a cache over the given filesystem capability.
func New(lister Lister, opts Options) *Cache {
	return &Cache{
		lister:   lister,
		opts:     opts,
		listings: make(map[string]*DirectoryListing),
		now:      time.Now,
	}
}

// Listing returns the cached listing for path, reading and sorting it on
// first access. Read failures come back as an unreadable marker listing,
// never as an error: a single bad directory must not break the session.
func (c *Cache) Listing(path string) *DirectoryListing {
	if listing, ok := c.listings[path]; ok {
		return listing
	}
	listing := c.read(path)
	c.listings[path] = listing
	return listing
}

// Refresh discards any cached listing for path and re-reads it.
func (c *Cache) Refresh(path string) *DirectoryListing {
	delete(c.listings, path)
	return c.Listing(path)
}

// Invalidate clears the cached listing for one path.
func (c *Cache) Invalidate(path string) {
	delete(c.listings, path)
}

// InvalidateAll clears every cached listing. Used on explicit refresh when
// external changes are suspected.
func (c *Cache) InvalidateAll() {
	c.listings = make(map[string]*DirectoryListing)
}

// SetOptions replaces the filter options and drops all cached listings,
// since existing listings were filtered under the old options.
func (c *Cache) SetOptions(opts Options) {
	c.opts = opts
	c.InvalidateAll()
}

// Paths returns the directories currently held in the cache.
func (c *Cache) Paths() []string {
	paths := make([]string, 0, len(c.listings))
	for path := range c.listings {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (c *Cache) read(path string) *DirectoryListing {
	raw, err := c.lister.List(path)
	if err != nil {
		log.Warn("listing failed for %s: %v", path, err)
		return &DirectoryListing{
			Path:       path,
			ReadAt:     c.now(),
			Unreadable: true,
			Err:        errors.NewUnreadable(path, err),
		}
	}

	entries := make([]types.PathEntry, 0, len(raw))
	for _, re := range raw {
		if !c.opts.ShowHidden && strings.HasPrefix(re.Name, ".") {
			continue
		}
		if c.ignored(re.Name) {
			continue
		}
		entries = append(entries, types.PathEntry{
			Name:       re.Name,
			Path:       filepath.Join(path, re.Name),
			Kind:       re.Kind,
			Size:       re.Size,
			TargetDir:  re.TargetDir,
			TextLikely: re.Kind == types.KindFile && types.TextLikelyFor(re.Name),
		})
	}
	sortEntries(entries)

	return &DirectoryListing{
		Path:    path,
		Entries: entries,
		ReadAt:  c.now(),
	}
}

func (c *Cache) ignored(name string) bool {
	for _, g := range c.opts.Ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// sortEntries orders a listing: directories first, then files, each group
// case-insensitively by name. This ordering is the single source of truth
// for what a cursor index means.
func sortEntries(entries []types.PathEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].IsDir(), entries[j].IsDir()
		if di != dj {
			return di
		}
		ki, kj := entries[i].SortKey(), entries[j].SortKey()
		if ki != kj {
			return ki < kj
		}
		// Names equal under folding; fall back to the raw name so
		// re-reading an unchanged directory yields an identical order.
		return entries[i].Name < entries[j].Name
	})
}
