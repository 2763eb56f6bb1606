// Package browser implements the Miller-column navigation engine: the
// column stack, per-pane cursors, anchor handling, and quick search. All
// state transitions are synchronous; one intent is fully applied before the
// next is accepted.
package browser

import (
	"path/filepath"
	"time"

	"pillar/internal/cache"
	"pillar/internal/log"
	"pillar/pkg/types"
)

// Options tune per-tab navigation behavior.
type Options struct {
	// SearchTimeout resets the quick-search query after this much idle
	// time. Zero disables the timeout.
	SearchTimeout time.Duration
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// Browser is one tab's navigation state: an anchored stack of panes walked
// from the anchor directory down to the focus selection, plus quick-search
// state and remembered selections for re-entered directories.
type Browser struct {
	cache  *cache.Cache
	anchor string
	panes  []*Pane
	memory map[string]int
	search QuickSearch
	opts   Options
}

// New creates a browser anchored at dir. The directory may be unreadable;
// the single pane then carries the unreadable marker listing.
func New(c *cache.Cache, dir string, opts Options) *Browser {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Browser{
		cache:  c,
		anchor: dir,
		panes:  []*Pane{newPane(c, dir, 0)},
		memory: make(map[string]int),
		opts:   opts,
	}
}

// Anchor returns the topmost directory this browser may show. Back never
// ascends past it; only SetAnchor moves it.
func (b *Browser) Anchor() string {
	return b.anchor
}

// Panes returns the column stack from anchor to focus.
func (b *Browser) Panes() []*Pane {
	return b.panes
}

// Focus returns the rightmost pane, the one receiving navigation input.
func (b *Browser) Focus() *Pane {
	return b.panes[len(b.panes)-1]
}

// Search exposes the quick-search state for rendering.
func (b *Browser) Search() *QuickSearch {
	return &b.search
}

// SelectedEntry returns the focused entry, the one the preview collaborator
// should show.
func (b *Browser) SelectedEntry() (types.PathEntry, bool) {
	return b.Focus().Selected()
}

// MoveCursor moves the focus pane's cursor by delta, clamped to the listing
// bounds. The stack length never changes on a cursor move; descending is
// always an explicit Enter.
func (b *Browser) MoveCursor(delta int) {
	b.Focus().MoveBy(delta)
}

// JumpHome moves the focus cursor to the first entry.
func (b *Browser) JumpHome() {
	b.Focus().SetCursor(0)
}

// JumpEnd moves the focus cursor to the last entry.
func (b *Browser) JumpEnd() {
	p := b.Focus()
	p.SetCursor(p.Len() - 1)
}

// Enter descends into the focused selection when it is a directory,
// appending a new focus pane. Selecting a file is a no-op: no panes exist
// beyond a file. A previously visited directory re-opens at its remembered
// cursor.
func (b *Browser) Enter() {
	focus := b.Focus()
	entry, ok := focus.Selected()
	if !ok || !entry.IsDir() {
		return
	}
	b.memory[focus.dir] = focus.Cursor()
	b.panes = append(b.panes, newPane(b.cache, entry.Path, b.memory[entry.Path]))
	b.search.reset()
	log.Debug("entered %s (stack depth %d)", entry.Path, len(b.panes))
}

// Back ascends one level by removing the focus pane. The new focus keeps
// the cursor it had before the earlier descent. With a single pane left the
// stack is already at the anchor and Back is a no-op, never an error.
func (b *Browser) Back() {
	if len(b.panes) <= 1 {
		return
	}
	popped := b.panes[len(b.panes)-1]
	b.memory[popped.dir] = popped.Cursor()
	b.panes = b.panes[:len(b.panes)-1]
	b.search.reset()
}

// SetAnchor roots the browser at the focus pane's directory. Everything
// above becomes unreachable via Back. The focus pane itself, cursor
// included, survives the truncation.
func (b *Browser) SetAnchor() {
	focus := b.Focus()
	b.anchor = focus.dir
	b.panes = []*Pane{focus}
	log.Info("anchored at %s", b.anchor)
}

// RefreshFocus re-fetches the focus pane's listing, bypassing the cache,
// and re-resolves the cursor to the entry with the same name if it still
// exists. Entries that vanished leave the cursor clamped to the nearest
// valid index. This is the reconciliation policy after external changes.
func (b *Browser) RefreshFocus() {
	focus := b.Focus()
	var name string
	if entry, ok := focus.Selected(); ok {
		name = entry.Name
	}
	b.cache.Refresh(focus.dir)
	if name != "" {
		focus.SelectByName(name)
	}
	b.search.recompute(focus.Listing())
}

// Resync walks the stack top-down after a broad invalidation, re-pointing
// each parent cursor at its child pane's directory and truncating the stack
// at the first pane whose child no longer exists.
func (b *Browser) Resync() {
	for i := 0; i < len(b.panes)-1; i++ {
		childName := filepath.Base(b.panes[i+1].dir)
		if !b.panes[i].SelectByName(childName) {
			for _, dropped := range b.panes[i+1:] {
				b.memory[dropped.dir] = dropped.Cursor()
			}
			b.panes = b.panes[:i+1]
			b.search.reset()
			log.Debug("resync truncated stack at %s", b.panes[i].dir)
			return
		}
	}
}

// SearchChar appends one quick-search keystroke and moves the cursor to the
// first matching entry. Without a match the cursor stays put and the match
// list is empty; the renderer indicates "no match".
func (b *Browser) SearchChar(ch rune) {
	focus := b.Focus()
	matches := b.search.push(ch, focus.Listing(), b.opts.Clock(), b.opts.SearchTimeout)
	if len(matches) > 0 {
		focus.SetCursor(matches[0])
	}
}

// ClearSearch empties the query and match list without moving the cursor.
func (b *Browser) ClearSearch() {
	b.search.reset()
}
