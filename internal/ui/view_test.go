package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"recall/internal/config"
)

func viewerConfig() config.Config {
	return config.Config{
		Theme: config.DefaultTheme(),
		Pages: []config.Page{
			{
				Name: "general",
				Entries: []config.Entry{
					{Name: "Copy", Keys: []string{"Ctrl", "C"}, Description: "Copies the selection"},
					{Name: "Reopen", Keys: []string{"Ctrl", "Shift", "C"}, Description: "Reopens the last tab"},
					{Name: "Note", Keys: nil, Description: "An entry with no shortcut"},
				},
			},
			{
				Name: "editor",
				Entries: []config.Entry{
					{Name: "Save", Keys: []string{"Ctrl", "S"}, Description: "Saves the buffer"},
				},
			},
		},
	}
}

func sizedModel(t *testing.T, cfg config.Config) Model {
	t.Helper()
	updated, _ := New(Options{Config: cfg}).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return m
}

func TestView_RendersCurrentPage(t *testing.T) {
	m := sizedModel(t, viewerConfig())

	view := m.View()
	for _, want := range []string{
		"[ general ]",
		"Ctrl", "Shift",
		"Copies the selection",
		"An entry with no shortcut",
		"Previous Page", "Next Page", "Close",
		"[Page 1 of 2]",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Saves the buffer") {
		t.Fatalf("view shows entries from another page:\n%s", view)
	}
}

func TestView_EntriesKeepDocumentOrder(t *testing.T) {
	m := sizedModel(t, viewerConfig())

	view := m.View()
	first := strings.Index(view, "Copies the selection")
	second := strings.Index(view, "Reopens the last tab")
	third := strings.Index(view, "An entry with no shortcut")
	if first < 0 || second < 0 || third < 0 || first > second || second > third {
		t.Fatalf("entries out of order (%d, %d, %d):\n%s", first, second, third, view)
	}
}

func TestView_EveryLineMatchesWindowWidth(t *testing.T) {
	const width = 64
	updated, _ := New(Options{Config: viewerConfig()}).Update(tea.WindowSizeMsg{Width: width, Height: 16})
	m := updated.(Model)

	for i, line := range strings.Split(m.View(), "\n") {
		if got := lipgloss.Width(line); got != width {
			t.Fatalf("line %d width = %d, want %d: %q", i, got, width, line)
		}
	}
}

func TestView_NarrowWindowKeepsBorderAligned(t *testing.T) {
	// Narrower than the widest shortcut column plus gap and padding; rows
	// must still be cut at the border instead of pushing past it.
	const width = 12
	updated, _ := New(Options{Config: viewerConfig()}).Update(tea.WindowSizeMsg{Width: width, Height: 10})
	m := updated.(Model)

	for i, line := range strings.Split(m.View(), "\n") {
		if got := lipgloss.Width(line); got != width {
			t.Fatalf("line %d width = %d, want %d: %q", i, got, width, line)
		}
	}
}

func TestView_SecondPageAfterNavigation(t *testing.T) {
	m := sizedModel(t, viewerConfig())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	view := updated.(Model).View()

	if !strings.Contains(view, "[ editor ]") {
		t.Fatalf("view missing second page title:\n%s", view)
	}
	if !strings.Contains(view, "[Page 2 of 2]") {
		t.Fatalf("view missing updated page counter:\n%s", view)
	}
}

func TestView_NoPagesRendersInfoPanel(t *testing.T) {
	m := sizedModel(t, config.Config{Theme: config.DefaultTheme()})

	view := m.View()
	if !strings.Contains(view, "No configuration loaded.") {
		t.Fatalf("view missing empty-state panel:\n%s", view)
	}
	if !strings.Contains(view, "recall init") {
		t.Fatalf("view missing init hint:\n%s", view)
	}
	if strings.Contains(view, "[Page") {
		t.Fatalf("view shows a page counter with no pages:\n%s", view)
	}
}

func TestView_BeforeFirstWindowSize(t *testing.T) {
	m := New(Options{Config: viewerConfig()})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q before first WindowSizeMsg", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		value string
		limit int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.value, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.value, tc.limit, got, tc.want)
		}
	}
}
