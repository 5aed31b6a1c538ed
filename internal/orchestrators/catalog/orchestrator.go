// Package catalog coordinates the spell API, the spell cache and search
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/spellbook/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/spellbook/internal/clients/external"
	"github.com/KirkDiggler/spellbook/internal/entities"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook/internal/search"
)

// Service defines the interface for catalog operations
type Service interface {
	// LoadCatalog returns the full spell catalog in API order
	LoadCatalog(ctx context.Context, input *LoadCatalogInput) (*LoadCatalogOutput, error)

	// GetSpell returns the full record for one spell
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)

	// SearchSpells loads the catalog and filters it by query
	SearchSpells(ctx context.Context, input *SearchSpellsInput) (*SearchSpellsOutput, error)

	// ClearCache empties the spell cache
	ClearCache(ctx context.Context, input *ClearCacheInput) (*ClearCacheOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	ExternalClient external.Client
	// SpellRepo is optional; without it every call goes to the API
	SpellRepo spells.Repository
	// DiceRoller picks placeholders, defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}
	if c.DiceRoller == nil {
		c.DiceRoller = dice.DefaultRoller
	}

	return vb.Build()
}

type orchestrator struct {
	client external.Client
	repo   spells.Repository
	roller dice.Roller
}

// New creates a new catalog orchestrator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client: cfg.ExternalClient,
		repo:   cfg.SpellRepo,
		roller: cfg.DiceRoller,
	}, nil
}

func (o *orchestrator) LoadCatalog(ctx context.Context, input *LoadCatalogInput) (*LoadCatalogOutput, error) {
	if input == nil {
		input = &LoadCatalogInput{}
	}

	if o.repo != nil && !input.Refresh {
		cached, err := o.repo.GetCatalog(ctx, spells.GetCatalogInput{})
		if err == nil {
			slog.Debug("Catalog served from cache", "count", len(cached.Spells))
			return &LoadCatalogOutput{Spells: cached.Spells, Source: SourceCache}, nil
		}
		logCacheReadError(err, "catalog")
	}

	list, err := o.client.ListSpells(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load spell catalog")
	}

	if o.repo != nil && len(list) > 0 {
		if _, err := o.repo.PutCatalog(ctx, spells.PutCatalogInput{Spells: list}); err != nil {
			slog.Warn("Failed to cache spell catalog", "error", err)
		}
	}

	return &LoadCatalogOutput{Spells: list, Source: SourceAPI}, nil
}

func (o *orchestrator) GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	index := strings.TrimSpace(input.Index)
	if index == "" {
		return nil, errors.InvalidArgument("spell index is required")
	}

	if o.repo != nil && !input.Refresh {
		cached, err := o.repo.GetSpell(ctx, spells.GetSpellInput{Index: index})
		if err == nil {
			slog.Debug("Spell served from cache", "index", index)
			return &GetSpellOutput{Spell: cached.Spell, Source: SourceCache}, nil
		}
		logCacheReadError(err, index)
	}

	spell, err := o.client.GetSpell(ctx, index)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell %s", index)
	}

	if o.repo != nil {
		if _, err := o.repo.PutSpell(ctx, spells.PutSpellInput{Spell: spell}); err != nil {
			slog.Warn("Failed to cache spell", "index", index, "error", err)
		}
	}

	return &GetSpellOutput{Spell: spell, Source: SourceAPI}, nil
}

func (o *orchestrator) SearchSpells(ctx context.Context, input *SearchSpellsInput) (*SearchSpellsOutput, error) {
	if input == nil {
		input = &SearchSpellsInput{}
	}

	loaded, err := o.LoadCatalog(ctx, &LoadCatalogInput{Refresh: input.Refresh})
	if err != nil {
		return nil, err
	}

	matches := search.Rank(loaded.Spells, input.Query)
	results := make([]entities.SpellSummary, len(matches))
	for i, m := range matches {
		results[i] = m.Spell
	}

	placeholder, _ := search.PickPlaceholder(loaded.Spells, o.roller)

	slog.Debug("Searched spells", "query", input.Query, "matches", len(matches), "total", len(loaded.Spells))

	return &SearchSpellsOutput{
		Query:       strings.TrimSpace(input.Query),
		Matches:     matches,
		Results:     results,
		Placeholder: placeholder,
		Total:       len(loaded.Spells),
	}, nil
}

func (o *orchestrator) ClearCache(ctx context.Context, _ *ClearCacheInput) (*ClearCacheOutput, error) {
	if o.repo == nil {
		return nil, errors.FailedPrecondition("no spell cache configured")
	}

	cleared, err := o.repo.Clear(ctx, spells.ClearInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear spell cache")
	}

	slog.Info("Cleared spell cache", "deleted", cleared.Deleted)

	return &ClearCacheOutput{Deleted: cleared.Deleted}, nil
}

func logCacheReadError(err error, key string) {
	if errors.IsNotFound(err) {
		slog.Debug("Spell cache miss", "key", key)
		return
	}
	slog.Warn("Spell cache read failed, falling back to API", "key", key, "error", err)
}
