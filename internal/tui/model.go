package tui

import (
	"os"
	"path/filepath"
	"time"
	"unicode"

	"pillar/internal/browser"
	"pillar/internal/cache"
	"pillar/internal/config"
	"pillar/internal/errors"
	"pillar/internal/log"
	"pillar/internal/preview"
	"pillar/internal/tabs"
	"pillar/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// invalidationMsg carries a directory whose cached listing went stale. The
// watcher goroutine only produces hints; the actual cache mutation happens
// here, on the event loop.
type invalidationMsg struct {
	dir string
}

// Model is the bubbletea model wiring the navigation core to the terminal.
// It owns no navigation state of its own: every keystroke becomes exactly
// one Intent applied to the tab set.
type Model struct {
	cfg     *config.Config
	cache   *cache.Cache
	tabs    *tabs.TabSet
	watcher *cache.Watcher

	keys   keyMap
	styles Styles

	previewVP      viewport.Model
	previewDetails *preview.Details

	width    int
	height   int
	status   string
	showHelp bool
}

// NewModel builds the model from configuration. The first tab is anchored
// at the configured start directory, or the working directory.
func NewModel(cfg *config.Config) (*Model, error) {
	start := cfg.General.StartDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "/"
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}

	lister := cache.OSLister{}
	kind, err := lister.Stat(start)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open start directory %s", start)
	}
	if kind == types.KindFile || kind == types.KindOther {
		return nil, errors.Newf("%s is not a directory", start)
	}

	c := cache.New(lister, cache.Options{
		ShowHidden: cfg.General.ShowHidden,
		Ignore:     cfg.CompiledIgnore(),
	})
	opts := browser.Options{
		SearchTimeout: time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
	}

	m := &Model{
		cfg:       cfg,
		cache:     c,
		tabs:      tabs.NewTabSet(c, start, opts),
		keys:      defaultKeyMap(),
		styles:    NewStyles(cfg),
		previewVP: viewport.New(0, 0),
	}

	if cfg.Watch.Enabled {
		w, err := cache.NewWatcher()
		if err != nil {
			log.Warn("watcher unavailable: %v", err)
		} else {
			w.Start()
			m.watcher = w
		}
	}

	m.afterIntent()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.waitInvalidation()
}

func (m *Model) waitInvalidation() tea.Cmd {
	return func() tea.Msg {
		dir, ok := <-m.watcher.Invalidations()
		if !ok {
			return nil
		}
		return invalidationMsg{dir: dir}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.afterIntent()
		return m, nil
	case invalidationMsg:
		m.tabs.Invalidate(msg.dir)
		m.afterIntent()
		return m, m.waitInvalidation()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	it := m.intentFor(msg)
	if it == nil {
		return m, nil
	}

	m.status = ""
	if err := m.tabs.Apply(it); err != nil {
		// Signals, not failures: surface and keep browsing.
		m.status = err.Error()
	}
	if _, ok := it.(browser.RefreshListing); ok {
		m.status = "refreshed"
	}
	m.afterIntent()
	return m, nil
}

// intentFor decodes one key message into one navigation intent.
func (m *Model) intentFor(msg tea.KeyMsg) browser.Intent {
	switch {
	case key.Matches(msg, m.keys.Up):
		return browser.MoveCursor{Delta: -1}
	case key.Matches(msg, m.keys.Down):
		return browser.MoveCursor{Delta: 1}
	case key.Matches(msg, m.keys.PageUp):
		return browser.MoveCursor{Delta: -jumpStep}
	case key.Matches(msg, m.keys.PageDown):
		return browser.MoveCursor{Delta: jumpStep}
	case key.Matches(msg, m.keys.Home):
		return browser.JumpHome{}
	case key.Matches(msg, m.keys.End):
		return browser.JumpEnd{}
	case key.Matches(msg, m.keys.Enter):
		return browser.Enter{}
	case key.Matches(msg, m.keys.Back):
		return browser.Back{}
	case key.Matches(msg, m.keys.SetAnchor):
		return browser.SetAnchor{}
	case key.Matches(msg, m.keys.Refresh):
		return browser.RefreshListing{}
	case key.Matches(msg, m.keys.RefreshAll):
		m.tabs.InvalidateAll()
		m.status = "refreshed all listings"
		return nil
	case key.Matches(msg, m.keys.ClearSearch):
		return browser.SearchClear{}
	case key.Matches(msg, m.keys.NewTab):
		return browser.NewTab{}
	case key.Matches(msg, m.keys.CloseTab):
		return browser.CloseTab{Index: -1}
	case key.Matches(msg, m.keys.NextTab):
		return browser.NextTab{}
	case key.Matches(msg, m.keys.PrevTab):
		return browser.PrevTab{}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		switch {
		case r >= '1' && r <= '9':
			return browser.SwitchTab{Index: int(r - '1')}
		case unicode.IsLetter(r):
			return browser.SearchChar{Ch: r}
		}
	}
	return nil
}

// afterIntent refreshes everything derived from navigation state: watched
// directories and the preview pane.
func (m *Model) afterIntent() {
	active := m.tabs.Active().Browser

	if m.watcher != nil {
		for _, p := range active.Panes() {
			m.watcher.Watch(p.Dir())
		}
	}

	m.previewDetails = nil
	m.previewVP.Width = m.previewWidth()
	m.previewVP.Height = m.columnsHeight() - 7

	entry, ok := active.SelectedEntry()
	if !ok || entry.IsDir() || !m.cfg.Preview.Enabled {
		return
	}
	details, err := preview.ForEntry(entry, m.cfg.Preview.MaxBytes)
	if err != nil {
		log.Debug("preview failed for %s: %v", entry.Path, err)
		return
	}
	m.previewDetails = details
	m.previewVP.SetContent(details.Content)
	m.previewVP.GotoTop()
}

// Tabs exposes the tab set, mainly for tests driving the model directly.
func (m *Model) Tabs() *tabs.TabSet {
	return m.tabs
}

// Status returns the current status-line message.
func (m *Model) Status() string {
	return m.status
}
