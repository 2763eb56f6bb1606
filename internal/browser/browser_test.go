package browser_test

import (
	"io/fs"
	"testing"
	"time"

	"pillar/internal/browser"
	"pillar/internal/cache"
	"pillar/internal/cache/cachetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture() (*cachetest.FakeFS, *cache.Cache) {
	fsys := cachetest.New()
	fsys.AddDir("/home/u",
		cachetest.Dir("Documents"),
		cachetest.Dir("Pictures"),
		cachetest.File("notes.txt"),
	)
	fsys.AddDir("/home/u/Documents",
		cachetest.Dir("taxes"),
		cachetest.File("report.md"),
	)
	fsys.AddDir("/home/u/Documents/taxes", cachetest.File("2023.pdf"))
	fsys.AddDir("/home/u/Pictures", cachetest.File("cat.png"))
	return fsys, cache.New(fsys, cache.Options{})
}

func newBrowser(c *cache.Cache) *browser.Browser {
	return browser.New(c, "/home/u", browser.Options{})
}

func TestEnterDescends(t *testing.T) {
	_, c := newFixture()
	b := newBrowser(c)

	require.Len(t, b.Panes(), 1)
	b.Enter() // Documents is at cursor 0
	require.Len(t, b.Panes(), 2)
	assert.Equal(t, "/home/u/Documents", b.Focus().Dir())
	assert.Equal(t, 0, b.Focus().Cursor())
}

func TestEnterOnFileIsNoOp(t *testing.T) {
	_, c := newFixture()
	b := newBrowser(c)

	b.JumpEnd() // notes.txt
	b.Enter()
	assert.Len(t, b.Panes(), 1)
	assert.Equal(t, 2, b.Focus().Cursor())
}

func TestBackRestoresCursor(t *testing.T) {
	_, c := newFixture()
	b := newBrowser(c)

	b.MoveCursor(1) // Pictures
	before := b.Focus().Cursor()
	b.Enter()
	require.Len(t, b.Panes(), 2)
	b.Back()
	require.Len(t, b.Panes(), 1)
	assert.Equal(t, before, b.Focus().Cursor())
}

func TestBackAtAnchorIsNoOp(t *testing.T) {
	_, c := newFixture()
	b := newBrowser(c)

	b.Back()
	b.Back()
	assert.Len(t, b.Panes(), 1)
	assert.Equal(t, "/home/u", b.Focus().Dir())
	assert.Equal(t, "/home/u", b.Anchor())
}

func TestEnterRestoresRememberedCursor(t *testing.T) {
	_, c := newFixture()
	b := newBrowser(c)

	b.Enter()       // into Documents
	b.MoveCursor(1) // report.md
	b.Back()
	b.Enter() // back into Documents
	assert.Equal(t, 1, b.Focus().Cursor())
}

func TestMoveCursorClamps(t *testing.T) {
	_, c := newFixture()
	b := newBrowser(c)

	b.MoveCursor(100)
	assert.Equal(t, 2, b.Focus().Cursor())
	b.MoveCursor(-100)
	assert.Equal(t, 0, b.Focus().Cursor())
	b.JumpEnd()
	assert.Equal(t, 2, b.Focus().Cursor())
	b.JumpHome()
	assert.Equal(t, 0, b.Focus().Cursor())
}

func TestSetAnchorTruncatesStack(t *testing.T) {
	_, c := newFixture()
	b := newBrowser(c)

	b.Enter() // Documents
	require.Len(t, b.Panes(), 2)

	b.SetAnchor()
	assert.Equal(t, "/home/u/Documents", b.Anchor())
	assert.Len(t, b.Panes(), 1)

	// Nothing above the new anchor is reachable anymore.
	for i := 0; i < 5; i++ {
		b.Back()
	}
	assert.Equal(t, "/home/u/Documents", b.Focus().Dir())
}

func TestSetAnchorKeepsCursor(t *testing.T) {
	_, c := newFixture()
	b := newBrowser(c)

	b.MoveCursor(1)
	b.SetAnchor()
	assert.Equal(t, 1, b.Focus().Cursor())
}

func TestUnreadableDirectoryPane(t *testing.T) {
	fsys, c := newFixture()
	fsys.AddDir("/home/u", cachetest.Dir("locked"))
	fsys.FailDir("/home/u/locked", fs.ErrPermission)
	b := newBrowser(c)

	b.Enter() // locked is the only entry now
	require.Len(t, b.Panes(), 2)

	snap := b.Snapshot()
	focus := snap.Panes[1]
	assert.True(t, focus.Unreadable)
	assert.Empty(t, focus.Entries)
	assert.Equal(t, -1, focus.Cursor)

	// Cursor moves on an entry-less pane are no-ops.
	b.MoveCursor(1)
	b.JumpEnd()
	assert.Equal(t, -1, b.Focus().Cursor())
}

func TestRefreshFollowsSelectionByName(t *testing.T) {
	fsys, c := newFixture()
	b := newBrowser(c)

	b.JumpEnd() // notes.txt at index 2
	require.Equal(t, 2, b.Focus().Cursor())

	// A new directory appears, shifting indices.
	fsys.AddDir("/home/u",
		cachetest.Dir("Archive"),
		cachetest.Dir("Documents"),
		cachetest.Dir("Pictures"),
		cachetest.File("notes.txt"),
	)
	b.RefreshFocus()

	entry, ok := b.SelectedEntry()
	require.True(t, ok)
	assert.Equal(t, "notes.txt", entry.Name)
	assert.Equal(t, 3, b.Focus().Cursor())
}

func TestRefreshClampsWhenSelectionVanished(t *testing.T) {
	fsys, c := newFixture()
	b := newBrowser(c)

	b.JumpEnd() // notes.txt
	fsys.AddDir("/home/u", cachetest.Dir("Documents"))
	b.RefreshFocus()

	entry, ok := b.SelectedEntry()
	require.True(t, ok)
	assert.Equal(t, "Documents", entry.Name)
	assert.Equal(t, 0, b.Focus().Cursor())
}

func TestResyncTruncatesOnVanishedChild(t *testing.T) {
	fsys, c := newFixture()
	b := newBrowser(c)

	b.Enter() // Documents
	b.Enter() // taxes (cursor 0 in Documents)
	require.Len(t, b.Panes(), 3)

	// Documents loses its taxes subdirectory behind our back.
	fsys.AddDir("/home/u/Documents", cachetest.File("report.md"))
	c.InvalidateAll()
	b.Resync()

	assert.Len(t, b.Panes(), 2)
	assert.Equal(t, "/home/u/Documents", b.Focus().Dir())
}

func TestApplyDispatch(t *testing.T) {
	_, c := newFixture()
	b := newBrowser(c)

	b.Apply(browser.MoveCursor{Delta: 1})
	assert.Equal(t, 1, b.Focus().Cursor())
	b.Apply(browser.JumpHome{})
	b.Apply(browser.Enter{})
	assert.Len(t, b.Panes(), 2)
	b.Apply(browser.Back{})
	assert.Len(t, b.Panes(), 1)

	// Tab-level intents are not the browser's; nothing changes.
	b.Apply(browser.NewTab{})
	b.Apply(browser.NextTab{})
	assert.Len(t, b.Panes(), 1)
}

func TestScenarioSingleTabWalk(t *testing.T) {
	// The end-to-end walk: descend, come back, move to a file, fail to
	// descend into it, then quick-search to it.
	fsys := cachetest.New()
	fsys.AddDir("/home/u",
		cachetest.Dir("Documents"),
		cachetest.File("notes.txt"),
	)
	fsys.AddDir("/home/u/Documents", cachetest.File("report.md"))
	c := cache.New(fsys, cache.Options{})
	b := browser.New(c, "/home/u", browser.Options{
		Clock: func() time.Time { return time.Unix(0, 0) },
	})

	b.Apply(browser.Enter{})
	require.Len(t, b.Panes(), 2)
	assert.Equal(t, "/home/u/Documents", b.Focus().Dir())

	b.Apply(browser.Back{})
	require.Len(t, b.Panes(), 1)
	assert.Equal(t, 0, b.Focus().Cursor())

	b.Apply(browser.MoveCursor{Delta: 1})
	assert.Equal(t, 1, b.Focus().Cursor())

	b.Apply(browser.Enter{}) // notes.txt is a file
	assert.Len(t, b.Panes(), 1)

	b.Apply(browser.SearchChar{Ch: 'n'})
	assert.Equal(t, 1, b.Focus().Cursor())
	assert.Equal(t, []int{1}, b.Search().Matches())
}
