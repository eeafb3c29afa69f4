// Package gorm provides GORM-based database operations for stockroom.
package gorm

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// CatalogStore provides CRUD persistence for one catalog resource. The same
// implementation serves all three resources; the schema descriptor carries
// everything that differs between them.
type CatalogStore[T any] struct {
	db     *gorm.DB
	schema Schema
}

// NewCatalogStore creates a catalog store for one resource.
func NewCatalogStore[T any](store *Store, schema Schema) *CatalogStore[T] {
	return &CatalogStore[T]{
		db:     store.DB,
		schema: schema,
	}
}

// Schema returns the resource's schema descriptor.
func (s *CatalogStore[T]) Schema() Schema {
	return s.schema
}

// List returns the records matching the criteria, windowed by skip/limit.
// The result is never nil; no matches yield an empty slice.
func (s *CatalogStore[T]) List(ctx context.Context, c ListCriteria) ([]T, error) {
	q := applyListCriteria(s.db.WithContext(ctx).Model(new(T)), s.schema, c)

	records := make([]T, 0)
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", s.schema.Table, err)
	}

	return records, nil
}

// Get returns the record with the given id, or nil when no record exists.
// Absence is not an error.
func (s *CatalogStore[T]) Get(ctx context.Context, id int64) (*T, error) {
	var record T
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", s.schema.Noun, err)
	}

	return &record, nil
}

// Create persists the record and fills in the store-assigned id.
func (s *CatalogStore[T]) Create(ctx context.Context, record *T) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create %s: %w", s.schema.Noun, err)
	}

	return nil
}

// Update applies the given columns to the record with the given id and
// returns the refreshed record. Returns nil when the id is unknown; updates
// never upsert. An empty column set leaves the record unchanged.
func (s *CatalogStore[T]) Update(ctx context.Context, id int64, columns map[string]interface{}) (*T, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if len(columns) > 0 {
		if err := s.db.WithContext(ctx).Model(existing).Updates(columns).Error; err != nil {
			return nil, fmt.Errorf("update %s: %w", s.schema.Noun, err)
		}
	}

	// Re-read so the caller sees exactly what was committed.
	return s.Get(ctx, id)
}

// Delete removes the record with the given id. Returns true if a record
// existed and was removed, false (without error) for unknown ids.
func (s *CatalogStore[T]) Delete(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete %s: %w", s.schema.Noun, res.Error)
	}

	return res.RowsAffected > 0, nil
}
