package tui

import (
	"pillar/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the browser chrome, built once from
// the configured theme.
type Styles struct {
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	Directory      lipgloss.Style
	File           lipgloss.Style
	Symlink        lipgloss.Style
	Selected       lipgloss.Style
	DimSelected    lipgloss.Style
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style
	Status         lipgloss.Style
	Error          lipgloss.Style
	Muted          lipgloss.Style
	SearchHit      lipgloss.Style
	SearchMiss     lipgloss.Style
}

// NewStyles builds the style set from the theme colors.
func NewStyles(cfg *config.Config) Styles {
	primary := lipgloss.Color(cfg.Theme.Primary)
	muted := lipgloss.Color(cfg.Theme.Muted)
	errColor := lipgloss.Color(cfg.Theme.Error)

	return Styles{
		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		InactiveBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Directory: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		File: lipgloss.NewStyle(),
		Symlink: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		Selected: lipgloss.NewStyle().
			Reverse(true),
		DimSelected: lipgloss.NewStyle().
			Foreground(muted).
			Reverse(true),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primary).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(muted),
		Error: lipgloss.NewStyle().
			Foreground(errColor),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		SearchHit: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		SearchMiss: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
	}
}
