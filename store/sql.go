package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grubdash-api/models"
)

// SQL is a gorm backed Store.
type SQL[T models.Record] struct {
	db *gorm.DB
}

func NewSQL[T models.Record](db *gorm.DB) *SQL[T] {
	return &SQL[T]{db: db}
}

func (s *SQL[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, 0)
	// rowid keeps sqlite insertion order
	if err := s.db.WithContext(ctx).Order("rowid").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return out, nil
}

func (s *SQL[T]) Get(ctx context.Context, id string) (T, error) {
	var record T
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return record, fmt.Errorf("get %q: %w", id, err)
	}
	return record, nil
}

func (s *SQL[T]) Create(ctx context.Context, record T) error {
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) || (res.Error == nil && res.RowsAffected == 0) {
		return fmt.Errorf("create %q: %w", record.Key(), ErrConflict)
	}
	if res.Error != nil {
		return fmt.Errorf("create %q: %w", record.Key(), res.Error)
	}
	return nil
}

// Update overwrites every column, zero values included.
func (s *SQL[T]) Update(ctx context.Context, record T) error {
	res := s.db.WithContext(ctx).Model(&record).Select("*").Updates(&record)
	if res.Error != nil {
		return fmt.Errorf("update %q: %w", record.Key(), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update %q: %w", record.Key(), ErrNotFound)
	}
	return nil
}

func (s *SQL[T]) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("delete %q: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	return nil
}

var (
	_ Store[models.Dish]  = (*SQL[models.Dish])(nil)
	_ Store[models.Order] = (*SQL[models.Order])(nil)
)
