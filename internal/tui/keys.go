package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares every binding the input decoder understands. Lowercase
// letters are deliberately absent: they feed quick search.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Enter       key.Binding
	Back        key.Binding
	SetAnchor   key.Binding
	Refresh     key.Binding
	RefreshAll  key.Binding
	ClearSearch key.Binding
	NewTab      key.Binding
	CloseTab    key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// jumpStep is how far PageUp/PageDown move the cursor.
const jumpStep = 10

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "jump up 10"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "jump down 10"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first entry"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last entry"),
		),
		Enter: key.NewBinding(
			key.WithKeys("right", "enter"),
			key.WithHelp("→/enter", "enter directory"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "backspace"),
			key.WithHelp("←", "go back"),
		),
		SetAnchor: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "anchor here"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh listing"),
		),
		RefreshAll: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "refresh everything"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// shortHelp lists the bindings shown in the status line.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Back, k.SetAnchor, k.NewTab, k.Help, k.Quit}
}

// fullHelp lists every binding for the help overlay.
func (k keyMap) fullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Enter, k.Back, k.SetAnchor, k.Refresh, k.RefreshAll, k.ClearSearch},
		{k.NewTab, k.CloseTab, k.NextTab, k.PrevTab, k.Help, k.Quit},
	}
}
