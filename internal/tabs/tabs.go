// Package tabs owns the independent browsing contexts. Each tab has its own
// column stack, anchor, and search state; the only thing tabs share is the
// listing cache they all read through.
package tabs

import (
	"path/filepath"

	"pillar/internal/browser"
	"pillar/internal/cache"
	"pillar/internal/errors"
	"pillar/internal/log"
)

// Tab is one browsing context.
type Tab struct {
	Browser *browser.Browser
}

// Name returns the display name for the tab: the base name of its focus
// pane's directory.
func (t *Tab) Name() string {
	name := filepath.Base(t.Browser.Focus().Dir())
	if name == "" || name == "." {
		return "~"
	}
	return name
}

// TabSet holds all tabs and tracks which one is active. Lifecycle spans the
// process run; nothing is persisted.
type TabSet struct {
	cache  *cache.Cache
	opts   browser.Options
	tabs   []*Tab
	active int
}

// NewTabSet creates the set with one tab anchored at startDir.
func NewTabSet(c *cache.Cache, startDir string, opts browser.Options) *TabSet {
	return &TabSet{
		cache: c,
		opts:  opts,
		tabs:  []*Tab{{Browser: browser.New(c, startDir, opts)}},
	}
}

// Active returns the current tab. All navigation intents operate on it.
func (s *TabSet) Active() *Tab {
	return s.tabs[s.active]
}

// ActiveIndex returns the index of the active tab.
func (s *TabSet) ActiveIndex() int {
	return s.active
}

// Len returns the number of tabs.
func (s *TabSet) Len() int {
	return len(s.tabs)
}

// Summaries returns the display names of all tabs in order.
func (s *TabSet) Summaries() []string {
	names := make([]string, len(s.tabs))
	for i, t := range s.tabs {
		names[i] = t.Name()
	}
	return names
}

// NewTab opens a tab rooted at the active tab's focus directory and
// activates it.
func (s *TabSet) NewTab() {
	dir := s.Active().Browser.Focus().Dir()
	s.tabs = append(s.tabs, &Tab{Browser: browser.New(s.cache, dir, s.opts)})
	s.active = len(s.tabs) - 1
	log.Debug("opened tab %d at %s", s.active, dir)
}

// CloseTab removes the tab at index. Closing the last remaining tab is
// refused with an InvalidOperation signal. Closing the active tab
// activates the tab immediately to its left, or index 0 if it was leftmost.
func (s *TabSet) CloseTab(index int) error {
	if index < 0 {
		index = s.active
	}
	if index >= len(s.tabs) {
		return errors.NewOutOfRange("no tab at index %d", index)
	}
	if len(s.tabs) == 1 {
		return errors.NewInvalidOperation("cannot close the last tab")
	}

	s.tabs = append(s.tabs[:index], s.tabs[index+1:]...)
	switch {
	case index < s.active:
		s.active--
	case index == s.active:
		if index > 0 {
			s.active = index - 1
		} else {
			s.active = 0
		}
	}
	return nil
}

// SwitchTo activates the tab at index, or signals OutOfRange.
func (s *TabSet) SwitchTo(index int) error {
	if index < 0 || index >= len(s.tabs) {
		return errors.NewOutOfRange("no tab at index %d", index)
	}
	s.active = index
	return nil
}

// Next activates the tab to the right, wrapping around.
func (s *TabSet) Next() {
	s.active = (s.active + 1) % len(s.tabs)
}

// Prev activates the tab to the left, wrapping around.
func (s *TabSet) Prev() {
	s.active = (s.active - 1 + len(s.tabs)) % len(s.tabs)
}

// InvalidateAll drops every cached listing and re-syncs all stacks against
// the re-read tree. Used on the explicit refresh-everything command.
func (s *TabSet) InvalidateAll() {
	s.cache.InvalidateAll()
	for _, t := range s.tabs {
		t.Browser.Resync()
	}
}

// Invalidate drops one cached listing and re-syncs the stacks that may
// reference it. Mutation of the shared cache from any tab is visible to all
// tabs referencing that path.
func (s *TabSet) Invalidate(path string) {
	s.cache.Invalidate(path)
	for _, t := range s.tabs {
		t.Browser.Resync()
	}
}

// Apply dispatches one intent: tab-level intents are handled here, all
// navigation intents go to the active tab's browser. The returned error is
// a signal (InvalidOperation, OutOfRange), never a fatal condition.
func (s *TabSet) Apply(it browser.Intent) error {
	switch it := it.(type) {
	case browser.NewTab:
		s.NewTab()
	case browser.CloseTab:
		return s.CloseTab(it.Index)
	case browser.SwitchTab:
		return s.SwitchTo(it.Index)
	case browser.NextTab:
		s.Next()
	case browser.PrevTab:
		s.Prev()
	default:
		s.Active().Browser.Apply(it)
	}
	return nil
}
