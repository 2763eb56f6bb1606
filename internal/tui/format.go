package tui

import (
	"strings"

	"pillar/internal/preview"
	"pillar/pkg/types"

	"github.com/mattn/go-runewidth"
)

// truncate shortens text to fit max display cells, ellipsizing. Width-aware:
// byte slicing would split wide runes in half.
func truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	return runewidth.Truncate(text, max, "…")
}

// pad right-fills text with spaces to the given display width so selection
// highlights cover the whole row.
func pad(text string, width int) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

func iconFor(entry types.PathEntry) string {
	switch {
	case entry.IsDir():
		return "📁"
	case entry.Kind == types.KindSymlink:
		return "🔗"
	case entry.Kind == types.KindOther:
		return "📦"
	case entry.TextLikely:
		return "📄"
	default:
		return "📦"
	}
}

func formatSize(size int64) string {
	return preview.FormatSize(size)
}
