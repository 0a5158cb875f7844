package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/cache"
	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/repos"
	"github.com/assurcompare/comparator-backend/internal/types"
)

type ComparisonService interface {
	// Assemble builds the nested category -> field -> per-item structure
	// for one or two items of a type. Missing values are nil slots, never
	// errors. Fields with no value row for any requested item are dropped,
	// and categories left without fields are dropped with them.
	Assemble(ctx context.Context, tx *gorm.DB, typeID uuid.UUID, itemIDs []uuid.UUID) (*types.ComparisonResult, error)
}

type comparisonService struct {
	db        *gorm.DB
	log       *logger.Logger
	fieldRepo repos.FieldRepo
	valueRepo repos.ValueRepo
	longRepo  repos.LongDescriptionRepo
	cache     *cache.Cache
}

func NewComparisonService(
	db *gorm.DB,
	baseLog *logger.Logger,
	fieldRepo repos.FieldRepo,
	valueRepo repos.ValueRepo,
	longRepo repos.LongDescriptionRepo,
	renderCache *cache.Cache,
) ComparisonService {
	serviceLog := baseLog.With("service", "ComparisonService")
	return &comparisonService{
		db:        db,
		log:       serviceLog,
		fieldRepo: fieldRepo,
		valueRepo: valueRepo,
		longRepo:  longRepo,
		cache:     renderCache,
	}
}

func (cs *comparisonService) Assemble(ctx context.Context, tx *gorm.DB, typeID uuid.UUID, itemIDs []uuid.UUID) (*types.ComparisonResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = cs.db
	}

	if len(itemIDs) < 1 || len(itemIDs) > 2 {
		return nil, fmt.Errorf("assemble expects 1 or 2 item ids, got %d", len(itemIDs))
	}

	cacheKey := assembleCacheKey(typeID, itemIDs)
	var cached types.ComparisonResult
	if cs.cache.GetJSON(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	categories, err := cs.fieldRepo.ListCategories(ctx, transaction, typeID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	result := &types.ComparisonResult{
		TypeID:     typeID,
		ItemIDs:    itemIDs,
		Categories: []*types.ComparisonCategory{},
	}

	for _, category := range categories {
		fields, err := cs.fieldRepo.ListDescriptions(ctx, transaction, category.ID)
		if err != nil {
			return nil, fmt.Errorf("list fields for category %s: %w", category.ID, err)
		}

		categoryData := &types.ComparisonCategory{
			Category: category,
			Fields:   []*types.ComparisonField{},
		}

		for _, field := range fields {
			fieldData := &types.ComparisonField{
				Field:            field,
				Values:           make(map[uuid.UUID]*string, len(itemIDs)),
				LongDescriptions: make(map[uuid.UUID]*string, len(itemIDs)),
			}

			populated := false
			for _, itemID := range itemIDs {
				value, err := cs.valueRepo.Get(ctx, transaction, itemID, field.ID)
				if err != nil {
					return nil, fmt.Errorf("get value for item %s field %s: %w", itemID, field.ID, err)
				}
				long, err := cs.longRepo.Get(ctx, transaction, itemID, field.ID)
				if err != nil {
					return nil, fmt.Errorf("get long description for item %s field %s: %w", itemID, field.ID, err)
				}

				fieldData.Values[itemID] = nil
				if value != nil {
					v := value.Value
					fieldData.Values[itemID] = &v
					populated = true
				}
				fieldData.LongDescriptions[itemID] = nil
				if long != nil {
					d := long.LongDescription
					fieldData.LongDescriptions[itemID] = &d
				}
			}

			if populated {
				categoryData.Fields = append(categoryData.Fields, fieldData)
			}
		}

		if len(categoryData.Fields) > 0 {
			result.Categories = append(result.Categories, categoryData)
		}
	}

	cs.cache.SetJSON(ctx, cacheKey, result)
	return result, nil
}

func assembleCacheKey(typeID uuid.UUID, itemIDs []uuid.UUID) string {
	parts := make([]string, 0, len(itemIDs)+1)
	parts = append(parts, typeID.String())
	for _, id := range itemIDs {
		parts = append(parts, id.String())
	}
	return "comparator:cmp:" + strings.Join(parts, ":")
}
