// Package store provides generic persistence primitives scoped to one table.
// A Store knows nothing about note semantics; the owning repository supplies
// the model type (which fixes the table) and the per-field storage types used
// to coerce partial-update maps.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"notes-data-be/internal/pkg/apperror"
	"notes-data-be/internal/repository/specification"

	"gorm.io/gorm"
)

// FieldType is the storage type of a column, used to coerce values in
// partial-update maps before they hit the driver.
type FieldType int

const (
	Text FieldType = iota
	Int
	Time
)

// FieldTypes maps column name to storage type. Columns missing from the map
// are treated as Text.
type FieldTypes map[string]FieldType

type Store[M any] struct {
	db    *gorm.DB
	types FieldTypes
}

func New[M any](db *gorm.DB, types FieldTypes) *Store[M] {
	return &Store[M]{db: db, types: types}
}

// Insert writes a new row. The store assigns the id and backfills it on m.
func (s *Store[M]) Insert(ctx context.Context, m *M) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return apperror.Store("insert", err)
	}
	return nil
}

// FindByID returns the row with the given id, or nil when no row matches.
func (s *Store[M]) FindByID(ctx context.Context, id int64) (*M, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var m M
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Store("find", err)
	}
	return &m, nil
}

// UpdateByID applies the given column values to the row with the given id
// and returns the number of rows affected. Zero rows is not an error: the id
// may not exist, or the values may equal the current ones.
func (s *Store[M]) UpdateByID(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	if err := validateID(id); err != nil {
		return 0, err
	}
	var m M
	res := s.db.WithContext(ctx).Model(&m).Where("id = ?", id).Updates(s.coerce(fields))
	if res.Error != nil {
		return 0, apperror.Store("update", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteByID removes the row with the given id and returns the number of
// rows affected. Zero rows means the id did not exist.
func (s *Store[M]) DeleteByID(ctx context.Context, id int64) (int64, error) {
	if err := validateID(id); err != nil {
		return 0, err
	}
	var m M
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&m)
	if res.Error != nil {
		return 0, apperror.Store("delete", res.Error)
	}
	return res.RowsAffected, nil
}

// FindAll returns every row matching the given specifications.
func (s *Store[M]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*M, error) {
	var models []*M
	query := applySpecifications(s.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.Store("find all", err)
	}
	return models, nil
}

// Count returns the number of rows matching the given specifications.
func (s *Store[M]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var m M
	var count int64
	query := applySpecifications(s.db.WithContext(ctx).Model(&m), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperror.Store("count", err)
	}
	return count, nil
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func validateID(id int64) error {
	if id <= 0 {
		return apperror.Validationf("id must be a positive integer")
	}
	return nil
}

// coerce converts map values to their declared storage type. Time values
// pass through untouched.
func (s *Store[M]) coerce(fields map[string]interface{}) map[string]interface{} {
	coerced := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		switch s.types[name] {
		case Int:
			coerced[name] = toInt64(value)
		case Time:
			coerced[name] = value
		default:
			coerced[name] = toString(value)
		}
	}
	return coerced
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		parsed, _ := strconv.ParseInt(n, 10, 64)
		return parsed
	default:
		return 0
	}
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
