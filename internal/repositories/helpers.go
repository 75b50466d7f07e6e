package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// withRelations preloads each named association ordered by id.
func withRelations(db *gorm.DB, relations []string) *gorm.DB {
	for _, rel := range relations {
		db = db.Preload(rel, func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		})
	}
	return db
}

// findOne follows the read convention of this package: a missing row is
// reported as (nil, nil), not as an error.
func findOne[T any](ctx context.Context, db *gorm.DB, relations []string, query string, args ...interface{}) (*T, error) {
	var out T
	err := withRelations(db.WithContext(ctx), relations).
		Where(query, args...).
		First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, db *gorm.DB, relations []string) ([]T, error) {
	var out []T
	err := withRelations(db.WithContext(ctx), relations).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func exists[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (bool, error) {
	var count int64
	var model T
	err := db.WithContext(ctx).Model(&model).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// insert and save never touch associations; relations are written through
// their own foreign key columns.
func insert(ctx context.Context, db *gorm.DB, value interface{}) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(value).Error
}

func save(ctx context.Context, db *gorm.DB, value interface{}) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(value).Select("*").Omit(clause.Associations).Updates(value)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
