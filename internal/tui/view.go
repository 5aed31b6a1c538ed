package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/spellbook/internal/format"
)

const (
	noSpellsFound = "No Spells Found"
	// below this width the sheet fields are stacked in one column
	twoColumnMinWidth = 60
)

var (
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footnoteStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

// View renders the current screen
func (m Model) View() string {
	if m.screen == screenDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Spellbook"))
	b.WriteString("\n")

	switch {
	case m.catalogErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.catalogErr)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+r retry • esc quit"))
		return b.String()

	case !m.catalogLoaded:
		b.WriteString(fmt.Sprintf("%s Loading spells...\n", m.spinner.View()))
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	results := m.session.Results
	if len(results) == 0 {
		b.WriteString(noSpellsFound)
		b.WriteString("\n")
	} else {
		rows := max(1, m.height-listChrome)
		start := 0
		if m.cursor >= rows {
			start = m.cursor - rows + 1
		}
		end := min(len(results), start+rows)
		for i := start; i < end; i++ {
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> " + results[i].Name))
			} else {
				b.WriteString("  " + results[i].Name)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d • ↑/↓ move • enter open • esc quit",
		len(results), len(m.session.Catalog()))))
	return b.String()
}

func (m Model) detailView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.selected.Name))
	b.WriteString("\n\n")

	switch {
	case m.detailErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.detailErr)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+r retry • esc back"))
		return b.String()

	case m.detailLoading || m.sheet == nil:
		b.WriteString(fmt.Sprintf("%s Loading...\n", m.spinner.View()))
		return b.String()
	}

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%3.f%% • ↑/↓ scroll • esc back", m.viewport.ScrollPercent()*100)))
	return b.String()
}

// renderSheet lays out a formatted spell for the viewport
func renderSheet(sheet *format.Sheet, width int) string {
	var b strings.Builder

	b.WriteString(renderFields(sheet.Fields, width))
	b.WriteString("\n")
	if len(sheet.Classes) > 0 {
		b.WriteString(labelStyle.Render("Classes:") + " " + strings.Join(sheet.Classes, ", "))
		b.WriteString("\n")
	}
	if sheet.Ritual {
		b.WriteString(labelStyle.Render("Ritual:") + " Yes\n")
	}
	b.WriteString("\n")

	wrap := lipgloss.NewStyle().Width(width)
	for _, block := range sheet.Blocks {
		text := block.Text
		if block.Header != "" {
			text = headerStyle.Render(block.Header) + " " + text
		}
		b.WriteString(wrap.Render(text))
		b.WriteString("\n\n")
	}

	if sheet.Footnote != "" {
		b.WriteString(footnoteStyle.Render(wrap.Render(sheet.Footnote)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderFields(fields []format.Field, width int) string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = labelStyle.Render(f.Label+":") + " " + f.Value
	}

	if width < twoColumnMinWidth {
		return strings.Join(lines, "\n")
	}

	half := (len(lines) + 1) / 2
	column := lipgloss.NewStyle().Width(width / 2)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		column.Render(strings.Join(lines[:half], "\n")),
		column.Render(strings.Join(lines[half:], "\n")),
	)
}
