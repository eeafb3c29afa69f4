// Package gorm provides GORM-based database operations for stockroom.
package gorm

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "stockroom_test_*")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}

	store, err := NewStore(Config{
		Path:     filepath.Join(tmpDir, "test.db"),
		MaxConns: 4,
		LogLevel: logger.Silent,
	})
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("NewStore failed: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func testSneakerStore(t *testing.T) (*CatalogStore[Sneaker], func()) {
	t.Helper()
	store, cleanup := testStore(t)
	return NewCatalogStore[Sneaker](store, SneakerSchema), cleanup
}

func seedSneakers(t *testing.T, s *CatalogStore[Sneaker], sneakers ...Sneaker) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(sneakers))
	for i := range sneakers {
		require.NoError(t, s.Create(context.Background(), &sneakers[i]))
		ids = append(ids, sneakers[i].ID)
	}
	return ids
}

func TestCatalogStore_CreateThenGet(t *testing.T) {
	s, cleanup := testSneakerStore(t)
	defer cleanup()
	ctx := context.Background()

	sneaker := Sneaker{Brand: "Nike", Model: "Air", Price: 100}
	require.NoError(t, s.Create(ctx, &sneaker))
	assert.Greater(t, sneaker.ID, int64(0))

	got, err := s.Get(ctx, sneaker.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sneaker, *got)
}

func TestCatalogStore_IDsAreUniquePerResource(t *testing.T) {
	s, cleanup := testSneakerStore(t)
	defer cleanup()

	ids := seedSneakers(t, s,
		Sneaker{Brand: "Nike", Model: "Air", Price: 100},
		Sneaker{Brand: "Nike", Model: "Air", Price: 100},
	)
	// Duplicate field values are allowed; identity is solely the id.
	assert.NotEqual(t, ids[0], ids[1])
}

func TestCatalogStore_GetUnknownID(t *testing.T) {
	s, cleanup := testSneakerStore(t)
	defer cleanup()

	got, err := s.Get(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogStore_Update(t *testing.T) {
	s, cleanup := testSneakerStore(t)
	defer cleanup()
	ctx := context.Background()

	ids := seedSneakers(t, s, Sneaker{Brand: "Nike", Model: "Air", Price: 100})

	updated, err := s.Update(ctx, ids[0], map[string]interface{}{"price": 120})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, int64(120), updated.Price)
	assert.Equal(t, "Nike", updated.Brand)
	assert.Equal(t, "Air", updated.Model)
}

func TestCatalogStore_UpdateEmptyPartial(t *testing.T) {
	s, cleanup := testSneakerStore(t)
	defer cleanup()
	ctx := context.Background()

	ids := seedSneakers(t, s, Sneaker{Brand: "Nike", Model: "Air", Price: 100})

	updated, err := s.Update(ctx, ids[0], map[string]interface{}{})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, Sneaker{ID: ids[0], Brand: "Nike", Model: "Air", Price: 100}, *updated)
}

func TestCatalogStore_UpdateUnknownIDDoesNotUpsert(t *testing.T) {
	s, cleanup := testSneakerStore(t)
	defer cleanup()
	ctx := context.Background()

	updated, err := s.Update(ctx, 42, map[string]interface{}{"price": 1})
	require.NoError(t, err)
	assert.Nil(t, updated)

	records, err := s.List(ctx, ListCriteria{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCatalogStore_Delete(t *testing.T) {
	s, cleanup := testSneakerStore(t)
	defer cleanup()
	ctx := context.Background()

	ids := seedSneakers(t, s, Sneaker{Brand: "Nike", Model: "Air", Price: 100})

	removed, err := s.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, removed)

	got, err := s.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Nil(t, got)

	// Second delete reports false, not an error.
	removed, err = s.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCatalogStore_ListNeverNil(t *testing.T) {
	s, cleanup := testSneakerStore(t)
	defer cleanup()

	records, err := s.List(context.Background(), ListCriteria{Limit: 10})
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCatalogStore_VapeFloatFields(t *testing.T) {
	store, cleanup := testStore(t)
	defer cleanup()
	ctx := context.Background()

	vapes := NewCatalogStore[Vape](store, VapeSchema)

	vape := Vape{Brand: "Voopoo", Model: "Drag X", Price: 59.99, PowerLevel: 80.0}
	require.NoError(t, vapes.Create(ctx, &vape))

	got, err := vapes.Get(ctx, vape.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 59.99, got.Price, 0.001)
	assert.InDelta(t, 80.0, got.PowerLevel, 0.001)

	updated, err := vapes.Update(ctx, vape.ID, map[string]interface{}{"power_level": 65.5})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.InDelta(t, 65.5, updated.PowerLevel, 0.001)
	assert.InDelta(t, 59.99, updated.Price, 0.001)
}

func TestCatalogStore_ResourcesAreIndependent(t *testing.T) {
	store, cleanup := testStore(t)
	defer cleanup()
	ctx := context.Background()

	sneakers := NewCatalogStore[Sneaker](store, SneakerSchema)
	drinks := NewCatalogStore[EnergyDrink](store, EnergyDrinkSchema)

	sneaker := Sneaker{Brand: "Nike", Model: "Air", Price: 100}
	require.NoError(t, sneakers.Create(ctx, &sneaker))

	// No cross-resource visibility or cascading.
	got, err := drinks.Get(ctx, sneaker.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	removed, err := drinks.Delete(ctx, sneaker.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	still, err := sneakers.Get(ctx, sneaker.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}
