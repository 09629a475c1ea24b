package assignment

import (
	"context"
	"sync"

	"acquiring/internal/events"
	"acquiring/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStructures struct {
	mock.Mock
}

func (m *MockStructures) GetByID(ctx context.Context, id string) (*models.FeeStructure, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*models.FeeStructure); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, a *models.MerchantFeeAssignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockStore) ListByMerchant(ctx context.Context, merchantID string) ([]models.MerchantFeeAssignment, error) {
	args := m.Called(ctx, merchantID)
	if out, ok := args.Get(0).([]models.MerchantFeeAssignment); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetEffectiveStructure(ctx context.Context, merchantID string) (*models.FeeStructure, error) {
	args := m.Called(ctx, merchantID)
	if s, ok := args.Get(0).(*models.FeeStructure); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCache) EffectiveGeneration(ctx context.Context, merchantID string) (int64, error) {
	args := m.Called(ctx, merchantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) CacheEffectiveStructure(ctx context.Context, merchantID string, generation int64, structure *models.FeeStructure) error {
	return m.Called(ctx, merchantID, generation, structure).Error(0)
}

func (m *MockCache) InvalidateMerchants(ctx context.Context, merchantIDs ...string) error {
	return m.Called(ctx, merchantIDs).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishAssignment(ctx context.Context, event *events.AssignmentEvent) error {
	return m.Called(ctx, event).Error(0)
}

type cachedStructure struct {
	generation int64
	structure  *models.FeeStructure
}

// memoryCache keeps the generation rule of the redis cache in process.
type memoryCache struct {
	mu          sync.Mutex
	generations map[string]int64
	entries     map[string]cachedStructure
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		generations: map[string]int64{},
		entries:     map[string]cachedStructure{},
	}
}

func (c *memoryCache) EffectiveGeneration(_ context.Context, merchantID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[merchantID], nil
}

func (c *memoryCache) GetEffectiveStructure(_ context.Context, merchantID string) (*models.FeeStructure, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[merchantID]
	if !ok || entry.generation != c.generations[merchantID] {
		return nil, nil
	}
	return entry.structure, nil
}

func (c *memoryCache) CacheEffectiveStructure(_ context.Context, merchantID string, generation int64, structure *models.FeeStructure) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[merchantID] = cachedStructure{generation: generation, structure: structure}
	return nil
}

func (c *memoryCache) InvalidateMerchants(_ context.Context, merchantIDs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range merchantIDs {
		c.generations[id]++
		delete(c.entries, id)
	}
	return nil
}
