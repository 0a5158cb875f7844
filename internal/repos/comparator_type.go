package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/types"
)

type TypeRepo interface {
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.ComparatorType, error)
}

type typeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTypeRepo(db *gorm.DB, baseLog *logger.Logger) TypeRepo {
	repoLog := baseLog.With("repo", "TypeRepo")
	return &typeRepo{db: db, log: repoLog}
}

// GetBySlug returns (nil, nil) when no type carries the slug.
func (tr *typeRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.ComparatorType, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result types.ComparatorType
	if err := transaction.WithContext(ctx).
		Where("slug = ?", slug).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
