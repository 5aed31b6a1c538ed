package spells

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/spellbook/internal/entities"
	"github.com/KirkDiggler/spellbook/internal/errors"
	redisclient "github.com/KirkDiggler/spellbook/internal/redis"
)

const scanBatchSize = 100

// RedisConfig configures the Redis-backed repository
type RedisConfig struct {
	Client    redisclient.Client
	TTL       time.Duration
	KeyPrefix string
}

// Validate validates the config and sets defaults
func (cfg *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultKeyPrefix
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
	prefix string
}

// NewRedis creates a new Redis-backed spell cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *redisRepository) GetCatalog(ctx context.Context, _ GetCatalogInput) (*GetCatalogOutput, error) {
	var spells []entities.SpellSummary
	if err := r.get(ctx, r.prefix+catalogKey, &spells); err != nil {
		return nil, err
	}

	return &GetCatalogOutput{Spells: spells}, nil
}

func (r *redisRepository) PutCatalog(ctx context.Context, input PutCatalogInput) (*PutCatalogOutput, error) {
	if len(input.Spells) == 0 {
		return nil, errors.InvalidArgument(errCatalogEmpty)
	}

	if err := r.set(ctx, r.prefix+catalogKey, input.Spells); err != nil {
		return nil, err
	}

	return &PutCatalogOutput{}, nil
}

func (r *redisRepository) GetSpell(ctx context.Context, input GetSpellInput) (*GetSpellOutput, error) {
	if input.Index == "" {
		return nil, errors.InvalidArgument(errSpellIndexEmpty)
	}

	var spell entities.SpellDetail
	if err := r.get(ctx, r.spellKey(input.Index), &spell); err != nil {
		return nil, err
	}

	return &GetSpellOutput{Spell: &spell}, nil
}

func (r *redisRepository) PutSpell(ctx context.Context, input PutSpellInput) (*PutSpellOutput, error) {
	if input.Spell == nil {
		return nil, errors.InvalidArgument(errSpellNil)
	}
	if input.Spell.Index == "" {
		return nil, errors.InvalidArgument(errSpellIndexEmpty)
	}

	if err := r.set(ctx, r.spellKey(input.Spell.Index), input.Spell); err != nil {
		return nil, err
	}

	return &PutSpellOutput{}, nil
}

func (r *redisRepository) Clear(ctx context.Context, _ ClearInput) (*ClearOutput, error) {
	pattern := r.prefix + "*"

	// SCAN only walks one node, so a cluster is cleared master by master
	if cluster, ok := r.client.(*goredis.ClusterClient); ok {
		var (
			mu    sync.Mutex
			total int
		)
		err := cluster.ForEachMaster(ctx, func(ctx context.Context, node *goredis.Client) error {
			deleted, err := clearNode(ctx, node, pattern)
			mu.Lock()
			total += deleted
			mu.Unlock()
			return err
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to clear cache")
		}
		return &ClearOutput{Deleted: total}, nil
	}

	deleted, err := clearNode(ctx, r.client, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear cache")
	}

	return &ClearOutput{Deleted: deleted}, nil
}

type scanDeleter interface {
	Scan(ctx context.Context, cursor uint64, match string, count int64) *goredis.ScanCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

func clearNode(ctx context.Context, client scanDeleter, pattern string) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += int(n)
		}
		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}

func (r *redisRepository) spellKey(index string) string {
	return r.prefix + spellKeyPrefix + index
}

func (r *redisRepository) get(ctx context.Context, key string, target any) error {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return errors.NotFoundf("cache miss for %s", key)
		}
		return errors.Wrapf(err, "failed to read %s", key)
	}

	if err := json.Unmarshal([]byte(result), target); err != nil {
		// a corrupt entry would otherwise shadow the API until it expires
		if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
			slog.Warn("Failed to delete corrupt cache entry", "key", key, "error", delErr)
		}
		return errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal %s", key)
	}

	return nil
}

func (r *redisRepository) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", key)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}
