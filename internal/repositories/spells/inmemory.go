package spells

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/spellbook/internal/entities"
	"github.com/KirkDiggler/spellbook/internal/errors"
	"github.com/KirkDiggler/spellbook/internal/pkg/clock"
)

// InMemoryConfig configures the process-local repository
type InMemoryConfig struct {
	Clock clock.Clock
	TTL   time.Duration
}

// Validate validates the config and sets defaults
func (cfg *InMemoryConfig) Validate() error {
	if cfg.TTL < 0 {
		return errors.InvalidArgument("TTL must not be negative")
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

var _ Repository = (*InMemoryRepository)(nil)

type entry struct {
	catalog   []entities.SpellSummary
	spell     *entities.SpellDetail
	expiresAt time.Time
}

// InMemoryRepository implements Repository with a mutex-guarded map.
// Stored values are copied on the way in and out.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]entry
	clock clock.Clock
	ttl   time.Duration
}

// NewInMemory creates a new in-memory repository
func NewInMemory(cfg *InMemoryConfig) (*InMemoryRepository, error) {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &InMemoryRepository{
		store: make(map[string]entry),
		clock: cfg.Clock,
		ttl:   cfg.TTL,
	}, nil
}

// GetCatalog returns the cached catalog
func (r *InMemoryRepository) GetCatalog(_ context.Context, _ GetCatalogInput) (*GetCatalogOutput, error) {
	e, err := r.lookup(catalogKey)
	if err != nil {
		return nil, err
	}

	return &GetCatalogOutput{Spells: cloneCatalog(e.catalog)}, nil
}

// PutCatalog stores the catalog
func (r *InMemoryRepository) PutCatalog(_ context.Context, input PutCatalogInput) (*PutCatalogOutput, error) {
	if len(input.Spells) == 0 {
		return nil, errors.InvalidArgument(errCatalogEmpty)
	}

	r.put(catalogKey, entry{catalog: cloneCatalog(input.Spells)})

	return &PutCatalogOutput{}, nil
}

// GetSpell returns a cached spell record
func (r *InMemoryRepository) GetSpell(_ context.Context, input GetSpellInput) (*GetSpellOutput, error) {
	if input.Index == "" {
		return nil, errors.InvalidArgument(errSpellIndexEmpty)
	}

	e, err := r.lookup(spellKeyPrefix + input.Index)
	if err != nil {
		return nil, err
	}

	return &GetSpellOutput{Spell: cloneSpell(e.spell)}, nil
}

// PutSpell stores a spell record
func (r *InMemoryRepository) PutSpell(_ context.Context, input PutSpellInput) (*PutSpellOutput, error) {
	if input.Spell == nil {
		return nil, errors.InvalidArgument(errSpellNil)
	}
	if input.Spell.Index == "" {
		return nil, errors.InvalidArgument(errSpellIndexEmpty)
	}

	r.put(spellKeyPrefix+input.Spell.Index, entry{spell: cloneSpell(input.Spell)})

	return &PutSpellOutput{}, nil
}

// Clear removes every entry, expired or not
func (r *InMemoryRepository) Clear(_ context.Context, _ ClearInput) (*ClearOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := len(r.store)
	r.store = make(map[string]entry)

	return &ClearOutput{Deleted: deleted}, nil
}

// Keys lists the live keys in sorted order
func (r *InMemoryRepository) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.store))
	for k, e := range r.store {
		if !clock.Expired(r.clock, e.expiresAt) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (r *InMemoryRepository) put(key string, e entry) {
	e.expiresAt = r.clock.Now().Add(r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[key] = e
}

func (r *InMemoryRepository) lookup(key string) (entry, error) {
	r.mu.RLock()
	e, ok := r.store[key]
	r.mu.RUnlock()

	if !ok {
		return entry{}, errors.NotFoundf("cache miss for %s", strings.TrimPrefix(key, spellKeyPrefix))
	}
	if clock.Expired(r.clock, e.expiresAt) {
		r.mu.Lock()
		// re-check: a concurrent put may have refreshed it
		if current, ok := r.store[key]; ok && clock.Expired(r.clock, current.expiresAt) {
			delete(r.store, key)
		}
		r.mu.Unlock()
		return entry{}, errors.NotFoundf("cache entry for %s expired", strings.TrimPrefix(key, spellKeyPrefix))
	}

	return e, nil
}

func cloneCatalog(spells []entities.SpellSummary) []entities.SpellSummary {
	out := make([]entities.SpellSummary, len(spells))
	copy(out, spells)
	return out
}

func cloneSpell(spell *entities.SpellDetail) *entities.SpellDetail {
	if spell == nil {
		return nil
	}
	out := *spell
	out.Desc = append([]string(nil), spell.Desc...)
	out.HigherLevel = append([]string(nil), spell.HigherLevel...)
	out.Components = append([]string(nil), spell.Components...)
	out.Classes = append([]entities.Reference(nil), spell.Classes...)
	if spell.School != nil {
		school := *spell.School
		out.School = &school
	}
	if spell.AreaOfEffect != nil {
		area := *spell.AreaOfEffect
		out.AreaOfEffect = &area
	}
	if spell.DC != nil {
		dc := *spell.DC
		if spell.DC.DCType != nil {
			dcType := *spell.DC.DCType
			dc.DCType = &dcType
		}
		out.DC = &dc
	}
	if spell.Damage != nil {
		damage := *spell.Damage
		if spell.Damage.DamageType != nil {
			damageType := *spell.Damage.DamageType
			damage.DamageType = &damageType
		}
		out.Damage = &damage
	}
	return &out
}
