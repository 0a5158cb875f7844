package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/types"
)

type ValueRepo interface {
	Get(ctx context.Context, tx *gorm.DB, itemID, fieldID uuid.UUID) (*types.ComparatorValue, error)
}

type valueRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewValueRepo(db *gorm.DB, baseLog *logger.Logger) ValueRepo {
	repoLog := baseLog.With("repo", "ValueRepo")
	return &valueRepo{db: db, log: repoLog}
}

// Get returns (nil, nil) when no value row exists; absence is data.
func (vr *valueRepo) Get(ctx context.Context, tx *gorm.DB, itemID, fieldID uuid.UUID) (*types.ComparatorValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var result types.ComparatorValue
	if err := transaction.WithContext(ctx).
		Where("item_id = ? AND field_id = ?", itemID, fieldID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

type LongDescriptionRepo interface {
	Get(ctx context.Context, tx *gorm.DB, itemID, fieldID uuid.UUID) (*types.FieldLongDescription, error)
}

type longDescriptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLongDescriptionRepo(db *gorm.DB, baseLog *logger.Logger) LongDescriptionRepo {
	repoLog := baseLog.With("repo", "LongDescriptionRepo")
	return &longDescriptionRepo{db: db, log: repoLog}
}

func (lr *longDescriptionRepo) Get(ctx context.Context, tx *gorm.DB, itemID, fieldID uuid.UUID) (*types.FieldLongDescription, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var result types.FieldLongDescription
	if err := transaction.WithContext(ctx).
		Where("item_id = ? AND field_id = ?", itemID, fieldID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
