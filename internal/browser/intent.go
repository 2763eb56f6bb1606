package browser

import "pillar/pkg/types"

// Intent is one navigation input, decoded from a keystroke by the UI and
// fed into the core one at a time. The set is closed: everything the input
// decoder can produce is listed here.
type Intent interface {
	isIntent()
}

// MoveCursor moves the focus cursor by Delta, clamped to bounds.
type MoveCursor struct{ Delta int }

// JumpHome moves the focus cursor to the first entry.
type JumpHome struct{}

// JumpEnd moves the focus cursor to the last entry.
type JumpEnd struct{}

// Enter descends into the focused selection.
type Enter struct{}

// Back ascends one level, never past the anchor.
type Back struct{}

// SetAnchor roots the active tab at the focus directory.
type SetAnchor struct{}

// RefreshListing re-reads the focus pane's directory.
type RefreshListing struct{}

// SearchChar appends one quick-search keystroke.
type SearchChar struct{ Ch rune }

// SearchClear empties the quick-search query.
type SearchClear struct{}

// NewTab opens a tab at the active tab's focus directory.
type NewTab struct{}

// CloseTab closes the tab at Index (-1 means the active tab).
type CloseTab struct{ Index int }

// SwitchTab activates the tab at Index.
type SwitchTab struct{ Index int }

// NextTab activates the tab to the right, wrapping.
type NextTab struct{}

// PrevTab activates the tab to the left, wrapping.
type PrevTab struct{}

func (MoveCursor) isIntent()     {}
func (JumpHome) isIntent()       {}
func (JumpEnd) isIntent()        {}
func (Enter) isIntent()          {}
func (Back) isIntent()           {}
func (SetAnchor) isIntent()      {}
func (RefreshListing) isIntent() {}
func (SearchChar) isIntent()     {}
func (SearchClear) isIntent()    {}
func (NewTab) isIntent()         {}
func (CloseTab) isIntent()       {}
func (SwitchTab) isIntent()      {}
func (NextTab) isIntent()        {}
func (PrevTab) isIntent()        {}

// Apply runs one navigation intent against this browser. Tab-level intents
// are not the browser's to handle and fall through as no-ops; the tab set
// dispatches those before delegating here.
func (b *Browser) Apply(it Intent) {
	switch it := it.(type) {
	case MoveCursor:
		b.MoveCursor(it.Delta)
	case JumpHome:
		b.JumpHome()
	case JumpEnd:
		b.JumpEnd()
	case Enter:
		b.Enter()
	case Back:
		b.Back()
	case SetAnchor:
		b.SetAnchor()
	case RefreshListing:
		b.RefreshFocus()
	case SearchChar:
		b.SearchChar(it.Ch)
	case SearchClear:
		b.ClearSearch()
	}
}

// PaneView is the read-only snapshot of one pane handed to the renderer.
type PaneView struct {
	Dir        string
	Entries    []types.PathEntry
	Cursor     int
	Unreadable bool
}

// SearchView is the read-only quick-search snapshot.
type SearchView struct {
	Query    string
	Active   bool
	HasMatch bool
}

// View is the renderer-facing snapshot of a browser.
type View struct {
	Anchor string
	Panes  []PaneView
	Search SearchView
}

// Snapshot builds the renderer view: every pane with its resolved entries,
// clamped cursor, and unreadable flag.
func (b *Browser) Snapshot() View {
	panes := make([]PaneView, len(b.panes))
	for i, p := range b.panes {
		listing := p.Listing()
		panes[i] = PaneView{
			Dir:        p.dir,
			Entries:    listing.Entries,
			Cursor:     p.Cursor(),
			Unreadable: listing.Unreadable,
		}
	}
	return View{
		Anchor: b.anchor,
		Panes:  panes,
		Search: SearchView{
			Query:    b.search.Query(),
			Active:   b.search.Active(),
			HasMatch: b.search.HasMatch(),
		},
	}
}
