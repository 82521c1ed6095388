package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"recall/internal/config"
)

const (
	// columnGap is the spacing between the shortcut and description columns.
	columnGap = 2

	// sidePadding is the space between each vertical border and the content.
	sidePadding = 1
)

// View implements tea.Model. Rendering is a pure function of the config,
// the navigation index, and the window size; it never fails.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.renderFrame(m.width, m.height)
}

// renderFrame draws the full-screen bordered frame: the page title embedded
// in the top border, the entry table (or the no-config panel), and the
// legend embedded in the bottom border.
func (m Model) renderFrame(width, height int) string {
	if width < 2*sidePadding+4 || height < 3 {
		return ""
	}

	inner := width - 2
	rows := height - 2

	var title string
	var lines []string
	if len(m.cfg.Pages) == 0 {
		title = m.styles.Title.Render("[ recall ]")
		lines = m.renderNoConfig(inner, rows)
	} else {
		page := m.cfg.Pages[m.nav.Index()]
		title = m.styles.Title.Render(fmt.Sprintf("[ %s ]", page.Name))
		lines = m.renderRows(page, inner)
	}

	var b strings.Builder
	b.WriteString(borderLine("┌", "┐", title, inner, m.styles.Border))
	b.WriteString("\n")
	for i := 0; i < rows; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		b.WriteString(m.styles.Border.Render("│"))
		b.WriteString(padRight(line, inner))
		b.WriteString(m.styles.Border.Render("│"))
		b.WriteString("\n")
	}
	b.WriteString(borderLine("└", "┘", m.renderLegend(), inner, m.styles.Border))

	return b.String()
}

// renderRows builds one line per entry: the shortcut span padded to the
// page-wide column width, then the description filling the rest.
func (m Model) renderRows(page config.Page, inner int) []string {
	colWidth := shortcutColumnWidth(page.Entries, m.styles)
	descWidth := inner - colWidth - columnGap - 2*sidePadding

	lines := make([]string, 0, len(page.Entries))
	for _, entry := range page.Entries {
		span := renderShortcut(entry.Keys, m.styles)
		pad := strings.Repeat(" ", colWidth-lipgloss.Width(span))
		desc := m.styles.Description.Render(truncate(entry.Description, descWidth))
		line := strings.Repeat(" ", sidePadding) + span + pad + strings.Repeat(" ", columnGap) + desc
		// A window narrower than the shortcut column would push the line past
		// the right border; cut it at the inner width like descriptions are.
		if lipgloss.Width(line) > inner {
			line = ansi.Truncate(line, inner, "…")
		}
		lines = append(lines, line)
	}
	return lines
}

// renderLegend builds the bottom-border legend from the key bindings' help
// text, followed by the 1-based page counter.
func (m Model) renderLegend() string {
	var b strings.Builder
	b.WriteString(m.styles.LegendKey.Render(" " + m.keys.PrevPage.Help().Key + " "))
	b.WriteString(m.styles.LegendLabel.Render(m.keys.PrevPage.Help().Desc))
	b.WriteString(m.styles.LegendKey.Render(" " + m.keys.NextPage.Help().Key))
	b.WriteString(m.styles.LegendLabel.Render(m.keys.NextPage.Help().Desc))
	b.WriteString(m.styles.LegendKey.Render(" " + m.keys.Quit.Help().Key + " "))
	b.WriteString(m.styles.LegendLabel.Render(m.keys.Quit.Help().Desc))
	if m.nav.PageCount() > 0 {
		counter := fmt.Sprintf(" [Page %d of %d] ", m.nav.Index()+1, m.nav.PageCount())
		b.WriteString(m.styles.LegendKey.Render(counter))
	}
	return b.String()
}

// renderNoConfig renders the informational panel shown when the config has
// no pages. This is a valid state, distinct from a failed load.
func (m Model) renderNoConfig(inner, rows int) []string {
	message := []string{
		m.styles.Description.Render("No configuration loaded."),
		"",
		m.styles.Description.Render(`Run "recall init" to create an example config.`),
	}

	lines := make([]string, 0, rows)
	top := (rows - len(message)) / 2
	for i := 0; i < top; i++ {
		lines = append(lines, "")
	}
	for _, line := range message {
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, line))
	}
	return lines
}

// borderLine draws a horizontal border with a label centered inside it.
// Labels wider than the border are dropped rather than truncated mid-style.
func borderLine(left, right, label string, inner int, border lipgloss.Style) string {
	labelWidth := lipgloss.Width(label)
	if label == "" || labelWidth > inner {
		return border.Render(left + strings.Repeat("─", inner) + right)
	}

	leftFill := (inner - labelWidth) / 2
	rightFill := inner - labelWidth - leftFill
	return border.Render(left+strings.Repeat("─", leftFill)) +
		label +
		border.Render(strings.Repeat("─", rightFill)+right)
}

// padRight pads line with spaces to the given cell width, measuring through
// any ANSI styling.
func padRight(line string, width int) string {
	gap := width - lipgloss.Width(line)
	if gap <= 0 {
		return line
	}
	return line + strings.Repeat(" ", gap)
}

// truncate shortens value to at most limit cells, ending with an ellipsis
// when anything was cut.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
