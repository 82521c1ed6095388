package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"recall/internal/config"
)

// renderShortcut composes the styled span for one key sequence: every key
// token in bold highlight, with a plain '+' separator in the primary color
// before each token after the first. An empty sequence renders nothing.
func renderShortcut(keys []string, s styles) string {
	if len(keys) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.Key.Render(keys[0]))
	for _, key := range keys[1:] {
		b.WriteString(s.Separator.Render("+"))
		b.WriteString(s.Key.Render(key))
	}
	return b.String()
}

// shortcutColumnWidth returns the widest rendered span across the page's
// entries, in terminal cells. Recomputed on every render so the column
// always tracks the current page and theme; the cost is linear in the
// page's entries.
func shortcutColumnWidth(entries []config.Entry, s styles) int {
	widest := 0
	for _, entry := range entries {
		if w := lipgloss.Width(renderShortcut(entry.Keys, s)); w > widest {
			widest = w
		}
	}
	return widest
}
