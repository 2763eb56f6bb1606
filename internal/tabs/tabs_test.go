package tabs_test

import (
	"testing"

	"pillar/internal/browser"
	"pillar/internal/cache"
	"pillar/internal/cache/cachetest"
	"pillar/internal/errors"
	"pillar/internal/tabs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTabSet() (*cachetest.FakeFS, *cache.Cache, *tabs.TabSet) {
	fsys := cachetest.New()
	fsys.AddDir("/home/u",
		cachetest.Dir("Documents"),
		cachetest.File("notes.txt"),
	)
	fsys.AddDir("/home/u/Documents", cachetest.File("report.md"))
	c := cache.New(fsys, cache.Options{})
	return fsys, c, tabs.NewTabSet(c, "/home/u", browser.Options{})
}

func TestStartsWithOneTab(t *testing.T) {
	_, _, s := newTabSet()
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.ActiveIndex())
	assert.Equal(t, "u", s.Active().Name())
}

func TestNewTabClonesFocusDirectory(t *testing.T) {
	_, _, s := newTabSet()

	s.Active().Browser.Enter() // into Documents
	s.NewTab()

	require.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.ActiveIndex())
	assert.Equal(t, "/home/u/Documents", s.Active().Browser.Focus().Dir())
	// The new tab is anchored where it was born, with a fresh stack.
	assert.Len(t, s.Active().Browser.Panes(), 1)
}

func TestTabsAreIsolated(t *testing.T) {
	_, _, s := newTabSet()

	s.NewTab()
	s.Active().Browser.Enter() // tab 1 descends
	require.Len(t, s.Active().Browser.Panes(), 2)

	require.NoError(t, s.SwitchTo(0))
	assert.Len(t, s.Active().Browser.Panes(), 1)
	assert.Equal(t, 0, s.Active().Browser.Focus().Cursor())
}

func TestCloseLastTabRefused(t *testing.T) {
	_, _, s := newTabSet()

	err := s.CloseTab(0)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidOperation(err))
	assert.Equal(t, 1, s.Len())
}

func TestCloseActiveActivatesLeftNeighbor(t *testing.T) {
	_, _, s := newTabSet()
	s.NewTab()
	s.NewTab() // three tabs, active = 2

	require.NoError(t, s.CloseTab(2))
	assert.Equal(t, 1, s.ActiveIndex())

	s.NewTab() // active = 2 again
	require.NoError(t, s.SwitchTo(0))
	require.NoError(t, s.CloseTab(0)) // closing leftmost active tab
	assert.Equal(t, 0, s.ActiveIndex())
	assert.Equal(t, 2, s.Len())
}

func TestCloseBeforeActiveShiftsIndex(t *testing.T) {
	_, _, s := newTabSet()
	s.NewTab()
	s.NewTab()
	require.NoError(t, s.SwitchTo(2))

	active := s.Active()
	require.NoError(t, s.CloseTab(0))
	assert.Equal(t, 1, s.ActiveIndex())
	assert.Same(t, active, s.Active())
}

func TestSwitchToOutOfRange(t *testing.T) {
	_, _, s := newTabSet()

	err := s.SwitchTo(3)
	require.Error(t, err)
	assert.True(t, errors.IsOutOfRange(err))
	assert.Equal(t, 0, s.ActiveIndex())

	assert.True(t, errors.IsOutOfRange(s.SwitchTo(-1)))
}

func TestNextPrevWrap(t *testing.T) {
	_, _, s := newTabSet()
	s.NewTab()
	s.NewTab()
	require.NoError(t, s.SwitchTo(2))

	s.Next()
	assert.Equal(t, 0, s.ActiveIndex())
	s.Prev()
	assert.Equal(t, 2, s.ActiveIndex())
}

func TestSharedCacheAcrossTabs(t *testing.T) {
	fsys, c, s := newTabSet()

	s.Active().Browser.Enter() // reads /home/u/Documents
	s.NewTab()
	s.Active().Browser.Enter()
	// Both tabs listed the same directory through one cached read.
	assert.Equal(t, 1, fsys.ListCalls["/home/u/Documents"])

	// Invalidation from one tab is visible to all tabs on next access.
	s.Invalidate("/home/u/Documents")
	_ = c.Listing("/home/u/Documents")
	assert.Equal(t, 2, fsys.ListCalls["/home/u/Documents"])
}

func TestApplyDispatchesTabIntents(t *testing.T) {
	_, _, s := newTabSet()

	require.NoError(t, s.Apply(browser.NewTab{}))
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.Apply(browser.PrevTab{}))
	assert.Equal(t, 0, s.ActiveIndex())
	require.NoError(t, s.Apply(browser.NextTab{}))

	err := s.Apply(browser.SwitchTab{Index: 9})
	assert.True(t, errors.IsOutOfRange(err))

	require.NoError(t, s.Apply(browser.Enter{}))
	assert.Len(t, s.Active().Browser.Panes(), 2)

	require.NoError(t, s.Apply(browser.CloseTab{Index: -1}))
	assert.Equal(t, 1, s.Len())
	err = s.Apply(browser.CloseTab{Index: -1})
	assert.True(t, errors.IsInvalidOperation(err))
}
