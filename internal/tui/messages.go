package tui

import (
	"github.com/KirkDiggler/spellbook/internal/entities"
	"github.com/KirkDiggler/spellbook/internal/orchestrators/catalog"
)

// Message types for Bubble Tea state transitions. Each carries the mount
// generation it was issued under so a message for a screen that has since
// been left can be dropped.

type catalogLoadedMsg struct {
	generation int
	spells     []entities.SpellSummary
	source     catalog.Source
	err        error
}

type spellLoadedMsg struct {
	generation int
	index      string
	spell      *entities.SpellDetail
	source     catalog.Source
	err        error
}
