package ui

import (
	"github.com/charmbracelet/lipgloss"

	"recall/internal/config"
)

// styles derives every lipgloss style the renderer needs from the two theme
// colors. Built once per model; cheap enough to rebuild if themes ever
// become switchable at runtime.
type styles struct {
	Title       lipgloss.Style // page title in the top border
	Key         lipgloss.Style // shortcut key tokens
	Separator   lipgloss.Style // '+' glyphs between key tokens
	Description lipgloss.Style // entry descriptions
	LegendKey   lipgloss.Style // legend key hints and the page counter
	LegendLabel lipgloss.Style // legend action labels
	Border      lipgloss.Style // frame borders
}

func newStyles(theme config.Theme) styles {
	return styles{
		Title:       lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true),
		Key:         lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true),
		Separator:   lipgloss.NewStyle().Foreground(theme.Primary),
		Description: lipgloss.NewStyle().Foreground(theme.Primary),
		LegendKey:   lipgloss.NewStyle().Foreground(theme.Highlight),
		LegendLabel: lipgloss.NewStyle().Foreground(theme.Primary),
		Border:      lipgloss.NewStyle().Foreground(theme.Primary),
	}
}
