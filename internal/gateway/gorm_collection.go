package gateway

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type gormCollection[T any] struct {
	db *gorm.DB
}

// NewCollection cria a coleção gorm para o tipo T.
func NewCollection[T any](db *gorm.DB) Collection[T] {
	return &gormCollection[T]{db: db}
}

func (c *gormCollection[T]) Select(ctx context.Context, q Query) ([]T, error) {
	tx := c.db.WithContext(ctx).Model(new(T))

	for _, f := range q.Filters {
		switch f.Op {
		case OpEq:
			tx = tx.Where(fmt.Sprintf("%s = ?", f.Field), f.Value)
		case OpGte:
			tx = tx.Where(fmt.Sprintf("%s >= ?", f.Field), f.Value)
		case OpLte:
			tx = tx.Where(fmt.Sprintf("%s <= ?", f.Field), f.Value)
		}
	}

	if q.Sort.Field != "" {
		dir := "ASC"
		if q.Sort.Desc {
			dir = "DESC"
		}
		tx = tx.Order(fmt.Sprintf("%s %s", q.Sort.Field, dir))
	}

	var rows []T
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *gormCollection[T]) Insert(ctx context.Context, row *T) error {
	return c.db.WithContext(ctx).Create(row).Error
}

func (c *gormCollection[T]) Update(ctx context.Context, id string, patch map[string]any) error {
	res := c.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(patch)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (c *gormCollection[T]) Delete(ctx context.Context, id string) error {
	res := c.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(T))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ Collection[struct{}] = (*gormCollection[struct{}])(nil)
