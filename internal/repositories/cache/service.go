package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"acquiring/internal/models"
	keys "acquiring/internal/utils/cache"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Set stores value as JSON under key with the default TTL.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *CacheService) effectiveKey(merchantID string) string {
	return keys.EffectiveStructureKey(merchantID)
}

// effectiveEntry is a resolved structure stamped with the merchant's
// generation at the time it was read from the store.
type effectiveEntry struct {
	Generation int64               `json:"generation"`
	Structure  models.FeeStructure `json:"structure"`
}

// EffectiveGeneration returns how often the merchant's entry has been
// invalidated. A merchant never invalidated is at generation 0.
func (s *CacheService) EffectiveGeneration(ctx context.Context, merchantID string) (int64, error) {
	n, err := s.client.Get(ctx, keys.EffectiveGenerationKey(merchantID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get cache generation: %w", err)
	}
	return n, nil
}

// Effective fee structure caching
func (s *CacheService) CacheEffectiveStructure(ctx context.Context, merchantID string, generation int64, structure *models.FeeStructure) error {
	if structure == nil {
		return errors.New("cannot cache nil fee structure")
	}
	return s.Set(ctx, s.effectiveKey(merchantID), effectiveEntry{Generation: generation, Structure: *structure})
}

// GetEffectiveStructure returns nil without error on a cache miss or when
// the entry predates the latest invalidation.
func (s *CacheService) GetEffectiveStructure(ctx context.Context, merchantID string) (*models.FeeStructure, error) {
	vals, err := s.client.MGet(ctx, s.effectiveKey(merchantID), keys.EffectiveGenerationKey(merchantID)).Result()
	if err != nil {
		effectiveLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to get cache value: %w", err)
	}

	structure, result, err := decodeEffective(vals[0], vals[1])
	effectiveLookups.WithLabelValues(result).Inc()
	return structure, err
}

// decodeEffective interprets the MGET replies for an entry and its
// generation. Missing keys come back as nil, present ones as strings.
func decodeEffective(entry, generation interface{}) (*models.FeeStructure, string, error) {
	raw, ok := entry.(string)
	if !ok {
		return nil, "miss", nil
	}

	var current int64
	if g, ok := generation.(string); ok {
		n, err := strconv.ParseInt(g, 10, 64)
		if err != nil {
			return nil, "error", fmt.Errorf("invalid cache generation %q: %w", g, err)
		}
		current = n
	}

	var e effectiveEntry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, "error", fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	if e.Generation != current {
		return nil, "stale", nil
	}
	return &e.Structure, "hit", nil
}

// InvalidateMerchants bumps each merchant's generation and drops its entry
// in one transaction. Generation keys do not expire.
func (s *CacheService) InvalidateMerchants(ctx context.Context, merchantIDs ...string) error {
	if len(merchantIDs) == 0 {
		return nil
	}
	pipe := s.client.TxPipeline()
	for _, id := range merchantIDs {
		pipe.Incr(ctx, keys.EffectiveGenerationKey(id))
		pipe.Del(ctx, s.effectiveKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to invalidate effective structures: %w", err)
	}
	return nil
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
