package catalog

import (
	"github.com/KirkDiggler/spellbook/internal/entities"
	"github.com/KirkDiggler/spellbook/internal/search"
)

// Source says where a result came from
type Source string

const (
	// SourceCache means the result was served from the spell cache
	SourceCache Source = "cache"
	// SourceAPI means the result was fetched from the spell API
	SourceAPI Source = "api"
)

// LoadCatalogInput defines the input for loading the catalog
type LoadCatalogInput struct {
	// Refresh skips the cache read and always calls the API
	Refresh bool
}

// LoadCatalogOutput defines the output for loading the catalog
type LoadCatalogOutput struct {
	Spells []entities.SpellSummary
	Source Source
}

// GetSpellInput defines the input for fetching one spell
type GetSpellInput struct {
	Index   string
	Refresh bool
}

// GetSpellOutput defines the output for fetching one spell
type GetSpellOutput struct {
	Spell  *entities.SpellDetail
	Source Source
}

// SearchSpellsInput defines the input for searching the catalog
type SearchSpellsInput struct {
	Query   string
	Refresh bool
}

// SearchSpellsOutput defines the output for searching the catalog
type SearchSpellsOutput struct {
	Query   string
	Matches []search.Match
	// Results is Matches without the scores
	Results []entities.SpellSummary
	// Placeholder is a random catalog name, empty when the catalog is
	Placeholder string
	Total       int
}

// ClearCacheInput defines the input for clearing the cache
type ClearCacheInput struct{}

// ClearCacheOutput defines the output for clearing the cache
type ClearCacheOutput struct {
	Deleted int
}
