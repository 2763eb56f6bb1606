package browser

import (
	"pillar/internal/cache"
	"pillar/pkg/types"
)

// Pane is one Miller column: a directory path and a selection cursor. It
// never owns its entries; every access re-resolves the listing through the
// shared cache by path, so invalidation and refresh are observed without
// dangling state.
type Pane struct {
	dir    string
	cache  *cache.Cache
	cursor int
}

func newPane(c *cache.Cache, dir string, cursor int) *Pane {
	p := &Pane{dir: dir, cache: c}
	p.SetCursor(cursor)
	return p
}

// Dir returns the directory this pane lists.
func (p *Pane) Dir() string {
	return p.dir
}

// Listing resolves the pane's directory listing through the cache.
func (p *Pane) Listing() *cache.DirectoryListing {
	return p.cache.Listing(p.dir)
}

// Len returns the number of entries currently listed.
func (p *Pane) Len() int {
	return len(p.Listing().Entries)
}

// Cursor returns the selection index clamped to the current listing, or -1
// when the listing is empty. The stored index may be stale after an
// external refresh shrank the listing; clamping happens on access.
func (p *Pane) Cursor() int {
	n := p.Len()
	if n == 0 {
		return -1
	}
	if p.cursor >= n {
		return n - 1
	}
	if p.cursor < 0 {
		return 0
	}
	return p.cursor
}

// SetCursor moves the selection, clamped to listing bounds.
func (p *Pane) SetCursor(i int) {
	n := p.Len()
	if n == 0 {
		p.cursor = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	p.cursor = i
}

// MoveBy moves the selection by delta, clamping rather than wrapping.
// A no-op on an empty listing: there is nothing to index.
func (p *Pane) MoveBy(delta int) {
	if p.Len() == 0 {
		return
	}
	p.SetCursor(p.Cursor() + delta)
}

// Selected returns the entry under the cursor.
func (p *Pane) Selected() (types.PathEntry, bool) {
	i := p.Cursor()
	if i < 0 {
		return types.PathEntry{}, false
	}
	return p.Listing().Entries[i], true
}

// SelectByName moves the cursor to the entry with the given name. Returns
// false and leaves the (clamped) cursor alone when no such entry exists.
func (p *Pane) SelectByName(name string) bool {
	for i, entry := range p.Listing().Entries {
		if entry.Name == name {
			p.SetCursor(i)
			return true
		}
	}
	return false
}
