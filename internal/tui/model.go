// Package tui is the interactive spell browser: a searchable list screen and
// a detail screen for the selected spell.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/spellbook/internal/entities"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/format"
	"github.com/KirkDiggler/spellbook/internal/orchestrators/catalog"
	"github.com/KirkDiggler/spellbook/internal/search"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// title, input, blank line above the list and the help footer
	listChrome = 5
	// title, blank line and the help footer
	detailChrome = 4
)

// Options contains configuration for the Model
type Options struct {
	Service catalog.Service
	// DiceRoller picks search placeholders, defaults to dice.DefaultRoller
	DiceRoller dice.Roller
	// Context bounds every fetch, defaults to context.Background()
	Context context.Context
}

// Model is the Bubble Tea model for the spell browser
type Model struct {
	service catalog.Service
	roller  dice.Roller
	parent  context.Context

	screen screen
	width  int
	height int

	// mount scope of the current screen
	ctx        context.Context
	cancel     context.CancelFunc
	generation int

	// list screen
	catalogLoading bool
	catalogLoaded  bool
	catalogErr     error
	session        search.Session
	input          textinput.Model
	cursor         int

	// detail screen
	selected      entities.SpellSummary
	detailLoading bool
	detailErr     error
	sheet         *format.Sheet
	viewport      viewport.Model

	spinner spinner.Model
}

// New creates the browser model, mounted on the list screen
func New(opts Options) (Model, error) {
	if opts.Service == nil {
		return Model{}, errors.InvalidArgument("catalog service is required")
	}
	if opts.DiceRoller == nil {
		opts.DiceRoller = dice.DefaultRoller
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.CharLimit = 64
	ti.Focus()

	m := Model{
		service:  opts.Service,
		roller:   opts.DiceRoller,
		parent:   opts.Context,
		width:    defaultWidth,
		height:   defaultHeight,
		input:    ti,
		spinner:  s,
		viewport: viewport.New(defaultWidth, defaultHeight-detailChrome),
	}
	m.mount(screenList)
	m.catalogLoading = true

	return m, nil
}

// Init starts the catalog fetch for the list screen
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		m.loadCatalog(),
	)
}

// mount enters a screen: the previous screen's scope is canceled and a new
// scope and generation are created.
func (m *Model) mount(s screen) {
	if m.cancel != nil {
		m.cancel()
	}
	m.ctx, m.cancel = context.WithCancel(m.parent)
	m.generation++
	m.screen = s
}

// Close cancels the current screen's scope
func (m Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Selected returns the spell handed to the detail screen
func (m Model) Selected() entities.SpellSummary {
	return m.selected
}

// Command functions (run async)

func (m Model) loadCatalog() tea.Cmd {
	ctx, gen, svc := m.ctx, m.generation, m.service
	return func() tea.Msg {
		out, err := svc.LoadCatalog(ctx, &catalog.LoadCatalogInput{})
		if err != nil {
			return catalogLoadedMsg{generation: gen, err: err}
		}
		return catalogLoadedMsg{generation: gen, spells: out.Spells, source: out.Source}
	}
}

func (m Model) loadSpell(index string) tea.Cmd {
	ctx, gen, svc := m.ctx, m.generation, m.service
	return func() tea.Msg {
		out, err := svc.GetSpell(ctx, &catalog.GetSpellInput{Index: index})
		if err != nil {
			return spellLoadedMsg{generation: gen, index: index, err: err}
		}
		return spellLoadedMsg{generation: gen, index: index, spell: out.Spell, source: out.Source}
	}
}
