package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"pillar/internal/browser"
	"pillar/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(m.renderColumns())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m *Model) columnsHeight() int {
	// Tab bar and status bar take one line each.
	h := m.height - 2
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) visiblePanes() []browser.PaneView {
	panes := m.tabs.Active().Browser.Snapshot().Panes
	maxCols := m.cfg.General.MaxColumns
	if maxCols > 0 && len(panes) > maxCols {
		panes = panes[len(panes)-maxCols:]
	}
	return panes
}

func (m *Model) previewVisible() bool {
	if !m.cfg.Preview.Enabled {
		return false
	}
	_, ok := m.tabs.Active().Browser.SelectedEntry()
	return ok
}

func (m *Model) columnCount() int {
	n := len(m.visiblePanes())
	if m.previewVisible() {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) previewWidth() int {
	w := m.width/m.columnCount() - 4
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) renderTabBar() string {
	names := m.tabs.Summaries()
	active := m.tabs.ActiveIndex()
	parts := make([]string, len(names))
	for i, name := range names {
		label := fmt.Sprintf("%d:%s", i+1, truncate(name, 16))
		if i == active {
			parts[i] = m.styles.TabActive.Render(label)
		} else {
			parts[i] = m.styles.TabInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderColumns() string {
	panes := m.visiblePanes()
	ncols := m.columnCount()
	colWidth := m.width / ncols
	height := m.columnsHeight()

	cols := make([]string, 0, ncols)
	for i, pv := range panes {
		focused := i == len(panes)-1
		cols = append(cols, m.renderPane(pv, colWidth, height, focused))
	}
	if m.previewVisible() {
		cols = append(cols, m.renderPreview(colWidth, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderPane draws one Miller column: directory title, entry window around
// the cursor, and footer with the entry count.
func (m *Model) renderPane(pv browser.PaneView, width, height int, focused bool) string {
	inner := width - 4 // border + padding
	if inner < 4 {
		inner = 4
	}
	rows := height - 3 // border rows + title row
	if rows < 1 {
		rows = 1
	}

	title := truncate(filepath.Base(pv.Dir), inner)
	lines := []string{m.styles.Directory.Render(title)}

	switch {
	case pv.Unreadable:
		lines = append(lines, m.styles.Error.Render("[unreadable]"))
	case len(pv.Entries) == 0:
		lines = append(lines, m.styles.Muted.Render("(empty)"))
	default:
		start := 0
		if pv.Cursor >= rows {
			start = pv.Cursor - rows + 1
		}
		end := start + rows
		if end > len(pv.Entries) {
			end = len(pv.Entries)
		}
		for i := start; i < end; i++ {
			lines = append(lines, m.renderEntry(pv.Entries[i], i == pv.Cursor, focused, inner))
		}
	}

	footer := m.styles.Muted.Render(fmt.Sprintf("%d items", len(pv.Entries)))
	for len(lines) < rows+1 {
		lines = append(lines, "")
	}
	lines = append(lines, footer)

	border := m.styles.InactiveBorder
	if focused {
		border = m.styles.ActiveBorder
	}
	return border.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderEntry(entry types.PathEntry, selected, focused bool, width int) string {
	label := entry.Name
	if m.cfg.General.ShowIcons {
		label = iconFor(entry) + " " + label
	}
	label = pad(truncate(label, width), width)

	switch {
	case selected && focused:
		return m.styles.Selected.Render(label)
	case selected:
		return m.styles.DimSelected.Render(label)
	case entry.IsDir():
		return m.styles.Directory.Render(label)
	case entry.Kind == types.KindSymlink:
		return m.styles.Symlink.Render(label)
	default:
		return m.styles.File.Render(label)
	}
}

// renderPreview draws the rightmost column: a directory's contents for a
// focused directory, or file metadata plus capped content for a file.
func (m *Model) renderPreview(width, height int) string {
	entry, ok := m.tabs.Active().Browser.SelectedEntry()
	if !ok {
		return ""
	}

	if entry.IsDir() {
		listing := m.cache.Listing(entry.Path)
		return m.renderPane(browser.PaneView{
			Dir:        entry.Path,
			Entries:    listing.Entries,
			Cursor:     -1,
			Unreadable: listing.Unreadable,
		}, width, height, false)
	}

	inner := width - 4
	if inner < 4 {
		inner = 4
	}
	lines := []string{m.styles.Directory.Render(truncate(entry.Name, inner))}
	if d := m.previewDetails; d != nil {
		lines = append(lines,
			m.styles.Muted.Render("size  "+formatSize(d.Size)),
			m.styles.Muted.Render("mod   "+d.ModTime.Format("2006-01-02 15:04:05")),
		)
		if d.SymlinkTarget != "" {
			lines = append(lines, m.styles.Muted.Render("-> "+truncate(d.SymlinkTarget, inner-3)))
		}
		if d.MimeType != "" {
			lines = append(lines, m.styles.Muted.Render("mime  "+d.MimeType))
		}
		lines = append(lines, "", m.previewVP.View())
	}

	return m.styles.InactiveBorder.Width(width - 2).Height(height - 2).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) renderStatusBar() string {
	snap := m.tabs.Active().Browser.Snapshot()
	focus := snap.Panes[len(snap.Panes)-1]

	var parts []string
	if snap.Search.Active {
		style := m.styles.SearchHit
		label := "/" + snap.Search.Query
		if !snap.Search.HasMatch {
			style = m.styles.SearchMiss
			label += " (no match)"
		}
		parts = append(parts, style.Render(label))
	}
	if m.status != "" {
		parts = append(parts, m.styles.Error.Render(m.status))
	}
	pos := "-"
	if focus.Cursor >= 0 {
		pos = fmt.Sprintf("%d/%d", focus.Cursor+1, len(focus.Entries))
	}
	parts = append(parts,
		m.styles.Status.Render(truncate(focus.Dir, m.width/2)),
		m.styles.Status.Render(pos),
	)

	left := strings.Join(parts, "  ")
	var hints []string
	for _, b := range m.keys.shortHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	right := m.styles.Muted.Render(strings.Join(hints, " · "))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncate(left, m.width)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.TabActive.Render("pillar — key bindings"))
	b.WriteString("\n\n")
	for _, group := range m.keys.fullHelp() {
		for _, binding := range group {
			b.WriteString(fmt.Sprintf("  %-12s %s\n",
				binding.Help().Key, binding.Help().Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("  a-z quick search · 1-9 switch tab · any key to close"))
	return b.String()
}
