package tui_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pillar/internal/config"
	"pillar/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a real directory tree and a model anchored at its root.
//
//	root/
//	  projects/
//	    notes.txt
//	  readme.md
func fixture(t *testing.T) *tui.Model {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "projects"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "projects", "notes.txt"), []byte("hi\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), []byte("# r\n"), 0o644))

	cfg := config.New()
	cfg.General.StartDir = root
	cfg.Watch.Enabled = false

	m, err := tui.NewModel(cfg)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *tui.Model, msg tea.KeyMsg) {
	m.Update(msg)
}

func pressRune(m *tui.Model, r rune) {
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestKeysDriveNavigation(t *testing.T) {
	m := fixture(t)
	b := m.Tabs().Active().Browser

	// Cursor starts on the directory (dirs sort first).
	entry, ok := b.SelectedEntry()
	require.True(t, ok)
	assert.Equal(t, "projects", entry.Name)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, b.Panes(), 2)
	assert.Equal(t, filepath.Join(b.Anchor(), "projects"), b.Focus().Dir())

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Len(t, b.Panes(), 1)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	entry, _ = b.SelectedEntry()
	assert.Equal(t, "readme.md", entry.Name)

	// Enter on a file leaves the stack alone.
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, b.Panes(), 1)
}

func TestLettersRunQuickSearch(t *testing.T) {
	m := fixture(t)
	b := m.Tabs().Active().Browser

	pressRune(m, 'r')
	assert.Equal(t, "r", b.Search().Query())
	entry, _ := b.SelectedEntry()
	assert.Equal(t, "readme.md", entry.Name)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", b.Search().Query())
}

func TestTabKeys(t *testing.T) {
	m := fixture(t)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, 2, m.Tabs().Len())
	assert.Equal(t, 1, m.Tabs().ActiveIndex())

	pressRune(m, '1')
	assert.Equal(t, 0, m.Tabs().ActiveIndex())

	press(m, tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.Equal(t, 1, m.Tabs().Len())

	// Closing the last tab is refused and surfaced in the status line.
	press(m, tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.Equal(t, 1, m.Tabs().Len())
	assert.NotEmpty(t, m.Status())

	// The next successful intent clears the message.
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.Status())
}

func TestSwitchToMissingTabKeepsActive(t *testing.T) {
	m := fixture(t)

	pressRune(m, '5')
	assert.Equal(t, 0, m.Tabs().ActiveIndex())
	assert.NotEmpty(t, m.Status())
}

func TestViewShowsColumnsAndStatus(t *testing.T) {
	m := fixture(t)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	assert.Contains(t, out, "projects")
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "1/1") // cursor position in the focused pane
}

func TestViewShowsSearchState(t *testing.T) {
	m := fixture(t)

	pressRune(m, 'z')
	out := m.View()
	assert.Contains(t, out, "/z")
	assert.Contains(t, out, "no match")
}

func TestHelpToggle(t *testing.T) {
	m := fixture(t)

	pressRune(m, '?')
	assert.True(t, strings.Contains(m.View(), "key bindings"))

	// Any key closes help without acting on the browser.
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, m.Tabs().Active().Browser.Panes(), 1)
	assert.False(t, strings.Contains(m.View(), "key bindings"))
}

func TestStartDirMustBeDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cfg := config.New()
	cfg.General.StartDir = file
	_, err := tui.NewModel(cfg)
	assert.Error(t, err)

	cfg.General.StartDir = filepath.Join(t.TempDir(), "missing")
	_, err = tui.NewModel(cfg)
	assert.Error(t, err)
}

func TestZeroSizeViewPlaceholder(t *testing.T) {
	root := t.TempDir()
	cfg := config.New()
	cfg.General.StartDir = root
	cfg.Watch.Enabled = false

	m, err := tui.NewModel(cfg)
	require.NoError(t, err)
	assert.Equal(t, "loading...", m.View())
}
