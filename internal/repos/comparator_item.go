package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/types"
)

type ItemRepo interface {
	GetActiveBySlug(ctx context.Context, tx *gorm.DB, typeID uuid.UUID, slug string) (*types.ComparatorItem, error)
	ListActiveByType(ctx context.Context, tx *gorm.DB, typeID uuid.UUID) ([]*types.ComparatorItem, error)
}

type itemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
	repoLog := baseLog.With("repo", "ItemRepo")
	return &itemRepo{db: db, log: repoLog}
}

// GetActiveBySlug returns (nil, nil) when the slug misses or the item is
// inactive; inactive items are never eligible for comparison.
func (ir *itemRepo) GetActiveBySlug(ctx context.Context, tx *gorm.DB, typeID uuid.UUID, slug string) (*types.ComparatorItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var result types.ComparatorItem
	if err := transaction.WithContext(ctx).
		Where("slug = ? AND type_id = ? AND is_active = ?", slug, typeID, true).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (ir *itemRepo) ListActiveByType(ctx context.Context, tx *gorm.DB, typeID uuid.UUID) ([]*types.ComparatorItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var results []*types.ComparatorItem
	if err := transaction.WithContext(ctx).
		Where("type_id = ? AND is_active = ?", typeID, true).
		Order("sort_order").Order("name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
