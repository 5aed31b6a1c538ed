// Package spells caches spell API responses: the catalog and individual
// spell records.
package spells

//go:generate mockgen -destination=mock/mock_repository.go -package=spellsmock github.com/KirkDiggler/spellbook/internal/repositories/spells Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/spellbook/internal/entities"
)

const (
	// DefaultKeyPrefix namespaces every cache key
	DefaultKeyPrefix = "spellbook:"

	// DefaultTTL is how long cached entries live when no TTL is configured
	DefaultTTL = 24 * time.Hour

	catalogKey     = "catalog"
	spellKeyPrefix = "spell:"

	// Error messages
	errSpellNil        = "spell cannot be nil"
	errSpellIndexEmpty = "spell index cannot be empty"
	errCatalogEmpty    = "catalog cannot be empty"
)

// Repository defines the interface for the spell cache
type Repository interface {
	// GetCatalog returns the cached catalog
	// Returns errors.NotFound on a miss or an expired entry
	// Returns errors.DataLoss if the stored entry cannot be decoded
	GetCatalog(ctx context.Context, input GetCatalogInput) (*GetCatalogOutput, error)

	// PutCatalog stores the catalog, replacing any previous one
	// Returns errors.InvalidArgument for an empty catalog
	PutCatalog(ctx context.Context, input PutCatalogInput) (*PutCatalogOutput, error)

	// GetSpell returns a cached spell record by index
	// Returns errors.InvalidArgument for an empty index
	// Returns errors.NotFound on a miss or an expired entry
	GetSpell(ctx context.Context, input GetSpellInput) (*GetSpellOutput, error)

	// PutSpell stores a spell record under its index
	// Returns errors.InvalidArgument for a nil spell or empty index
	PutSpell(ctx context.Context, input PutSpellInput) (*PutSpellOutput, error)

	// Clear removes every cached entry
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// GetCatalogInput defines the input for reading the catalog
type GetCatalogInput struct{}

// GetCatalogOutput defines the output for reading the catalog
type GetCatalogOutput struct {
	Spells []entities.SpellSummary
}

// PutCatalogInput defines the input for storing the catalog
type PutCatalogInput struct {
	Spells []entities.SpellSummary
}

// PutCatalogOutput defines the output for storing the catalog
type PutCatalogOutput struct{}

// GetSpellInput defines the input for reading a spell
type GetSpellInput struct {
	Index string
}

// GetSpellOutput defines the output for reading a spell
type GetSpellOutput struct {
	Spell *entities.SpellDetail
}

// PutSpellInput defines the input for storing a spell
type PutSpellInput struct {
	Spell *entities.SpellDetail
}

// PutSpellOutput defines the output for storing a spell
type PutSpellOutput struct{}

// ClearInput defines the input for clearing the cache
type ClearInput struct{}

// ClearOutput defines the output for clearing the cache
type ClearOutput struct {
	// Deleted is the number of entries removed
	Deleted int
}
