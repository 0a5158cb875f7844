package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/types"
)

type FieldRepo interface {
	ListCategories(ctx context.Context, tx *gorm.DB, typeID uuid.UUID) ([]*types.ComparatorField, error)
	ListDescriptions(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) ([]*types.ComparatorField, error)
	ListFilterable(ctx context.Context, tx *gorm.DB, typeID uuid.UUID) ([]*types.ComparatorField, error)
}

type fieldRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFieldRepo(db *gorm.DB, baseLog *logger.Logger) FieldRepo {
	repoLog := baseLog.With("repo", "FieldRepo")
	return &fieldRepo{db: db, log: repoLog}
}

// ListCategories returns the top-level category fields of a type, ordered
// by sort_order with insertion order as the implicit tie-break.
func (fr *fieldRepo) ListCategories(ctx context.Context, tx *gorm.DB, typeID uuid.UUID) ([]*types.ComparatorField, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.ComparatorField
	if err := transaction.WithContext(ctx).
		Where("type_id = ? AND field_type = ?", typeID, types.FieldTypeCategory).
		Order("sort_order").Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *fieldRepo) ListDescriptions(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) ([]*types.ComparatorField, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.ComparatorField
	if err := transaction.WithContext(ctx).
		Where("parent_category_id = ? AND field_type = ?", categoryID, types.FieldTypeDescription).
		Order("sort_order").Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *fieldRepo) ListFilterable(ctx context.Context, tx *gorm.DB, typeID uuid.UUID) ([]*types.ComparatorField, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.ComparatorField
	if err := transaction.WithContext(ctx).
		Where("type_id = ? AND is_filterable = ?", typeID, true).
		Order("sort_order").Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
