package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/spellbook/internal/entities"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/format"
	"github.com/KirkDiggler/spellbook/internal/search"
)

// Update handles messages and state transitions
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Close()
			return m, tea.Quit
		}
		if m.screen == screenDetail {
			return m.updateDetailKeys(msg)
		}
		return m.updateListKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-len(m.input.Prompt)-1)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-detailChrome)
		if m.sheet != nil {
			m.viewport.SetContent(renderSheet(m.sheet, m.viewport.Width))
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		if msg.generation != m.generation || m.screen != screenList {
			slog.Debug("Dropped stale catalog result", "generation", msg.generation)
			return m, nil
		}
		m.catalogLoading = false
		if msg.err != nil {
			if errors.IsCanceled(msg.err) {
				return m, nil
			}
			slog.Error("Failed to load spell catalog", "error", msg.err)
			m.catalogErr = msg.err
			return m, nil
		}

		slog.Info("Loaded spell catalog", "count", len(msg.spells), "source", msg.source)
		m.catalogErr = nil
		m.catalogLoaded = true
		m.session = search.NewSessionWithQuery(msg.spells, m.input.Value(), m.roller)
		m.input.Placeholder = m.session.Placeholder
		m.cursor = 0
		return m, nil

	case spellLoadedMsg:
		if msg.generation != m.generation || m.screen != screenDetail {
			slog.Debug("Dropped stale spell result", "index", msg.index, "generation", msg.generation)
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			if errors.IsCanceled(msg.err) {
				return m, nil
			}
			slog.Error("Failed to load spell", "index", msg.index, "error", msg.err)
			m.detailErr = msg.err
			return m, nil
		}

		m.detailErr = nil
		m.sheet = format.Format(msg.spell)
		for _, d := range m.sheet.Diagnostics {
			slog.Warn("Spell detail diagnostic", "index", msg.index, "diagnostic", d.String())
		}
		m.viewport.SetContent(renderSheet(m.sheet, m.viewport.Width))
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

func (m Model) updateListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.input.Value() == "" {
			m.Close()
			return m, tea.Quit
		}
		m.input.SetValue("")
		return m.applyQuery(), nil

	case "ctrl+r":
		if m.catalogLoaded || m.catalogLoading {
			return m, nil
		}
		m.mount(screenList)
		m.catalogLoading = true
		m.catalogErr = nil
		return m, tea.Batch(m.spinner.Tick, m.loadCatalog())

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "ctrl+n":
		if m.cursor < len(m.session.Results)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if !m.catalogLoaded || len(m.session.Results) == 0 {
			return m, nil
		}
		return m.openDetail(m.session.Results[m.cursor])
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m = m.applyQuery()
	}
	return m, cmd
}

func (m Model) applyQuery() Model {
	if !m.catalogLoaded {
		return m
	}
	m.session = m.session.WithQuery(m.input.Value())
	m.input.Placeholder = m.session.Placeholder
	m.cursor = 0
	return m
}

func (m Model) openDetail(spell entities.SpellSummary) (tea.Model, tea.Cmd) {
	m.selected = spell
	m.mount(screenDetail)
	m.detailLoading = true
	m.detailErr = nil
	m.sheet = nil
	m.viewport.SetContent("")

	return m, tea.Batch(m.spinner.Tick, m.loadSpell(spell.Index))
}

func (m Model) updateDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "left":
		m.mount(screenList)
		m.detailLoading = false
		m.detailErr = nil
		m.sheet = nil
		return m, nil

	case "ctrl+r":
		if m.detailLoading || m.detailErr == nil {
			return m, nil
		}
		return m.openDetail(m.selected)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
