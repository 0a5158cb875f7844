package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/platform/apierr"
	"github.com/assurcompare/comparator-backend/internal/repos"
	"github.com/assurcompare/comparator-backend/internal/types"
)

// GridView backs the selection grid: active items of a type plus the
// filterable fields for client-side filtering.
type GridView struct {
	Type             *types.ComparatorType
	Items            []*types.ComparatorItem
	FilterableFields []*types.ComparatorField
}

type CompareView struct {
	Type   *types.ComparatorType
	Item1  *types.ComparatorItem
	Item2  *types.ComparatorItem
	Result *types.ComparisonResult
}

type SingleView struct {
	Type   *types.ComparatorType
	Item   *types.ComparatorItem
	Result *types.ComparisonResult
}

type ResolveService interface {
	ResolveGrid(ctx context.Context, tx *gorm.DB, typeSlug string, showFilters bool) (*GridView, error)
	ResolveCompare(ctx context.Context, tx *gorm.DB, typeSlug, itemsCSV string) (*CompareView, error)
	ResolveSingle(ctx context.Context, tx *gorm.DB, typeSlug, itemSlug string) (*SingleView, error)
}

type resolveService struct {
	db         *gorm.DB
	log        *logger.Logger
	typeRepo   repos.TypeRepo
	itemRepo   repos.ItemRepo
	fieldRepo  repos.FieldRepo
	comparison ComparisonService
}

func NewResolveService(
	db *gorm.DB,
	baseLog *logger.Logger,
	typeRepo repos.TypeRepo,
	itemRepo repos.ItemRepo,
	fieldRepo repos.FieldRepo,
	comparison ComparisonService,
) ResolveService {
	serviceLog := baseLog.With("service", "ResolveService")
	return &resolveService{
		db:         db,
		log:        serviceLog,
		typeRepo:   typeRepo,
		itemRepo:   itemRepo,
		fieldRepo:  fieldRepo,
		comparison: comparison,
	}
}

func (rs *resolveService) resolveType(ctx context.Context, tx *gorm.DB, typeSlug string) (*types.ComparatorType, error) {
	if strings.TrimSpace(typeSlug) == "" {
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeMissingParams, fmt.Errorf("type slug required"))
	}
	cmpType, err := rs.typeRepo.GetBySlug(ctx, tx, typeSlug)
	if err != nil {
		return nil, fmt.Errorf("load type %q: %w", typeSlug, err)
	}
	if cmpType == nil {
		return nil, apierr.New(http.StatusNotFound, apierr.CodeTypeNotFound, fmt.Errorf("comparator type %q not found", typeSlug))
	}
	return cmpType, nil
}

func (rs *resolveService) ResolveGrid(ctx context.Context, tx *gorm.DB, typeSlug string, showFilters bool) (*GridView, error) {
	transaction := tx
	if transaction == nil {
		transaction = rs.db
	}

	cmpType, err := rs.resolveType(ctx, transaction, typeSlug)
	if err != nil {
		return nil, err
	}

	items, err := rs.itemRepo.ListActiveByType(ctx, transaction, cmpType.ID)
	if err != nil {
		return nil, fmt.Errorf("list items for type %q: %w", typeSlug, err)
	}

	filterable := []*types.ComparatorField{}
	if showFilters {
		filterable, err = rs.fieldRepo.ListFilterable(ctx, transaction, cmpType.ID)
		if err != nil {
			return nil, fmt.Errorf("list filterable fields for type %q: %w", typeSlug, err)
		}
	}

	return &GridView{Type: cmpType, Items: items, FilterableFields: filterable}, nil
}

func (rs *resolveService) ResolveCompare(ctx context.Context, tx *gorm.DB, typeSlug, itemsCSV string) (*CompareView, error) {
	transaction := tx
	if transaction == nil {
		transaction = rs.db
	}

	if strings.TrimSpace(itemsCSV) == "" {
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeMissingParams, fmt.Errorf("items parameter required"))
	}

	cmpType, err := rs.resolveType(ctx, transaction, typeSlug)
	if err != nil {
		return nil, err
	}

	// The two-slug validation runs before any item lookup.
	slugs := splitItemSlugs(itemsCSV)
	if len(slugs) != 2 || slugs[0] == slugs[1] {
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeExactlyTwoItems, fmt.Errorf("exactly two distinct items required, got %q", itemsCSV))
	}

	item1, err := rs.itemRepo.GetActiveBySlug(ctx, transaction, cmpType.ID, slugs[0])
	if err != nil {
		return nil, fmt.Errorf("load item %q: %w", slugs[0], err)
	}
	item2, err := rs.itemRepo.GetActiveBySlug(ctx, transaction, cmpType.ID, slugs[1])
	if err != nil {
		return nil, fmt.Errorf("load item %q: %w", slugs[1], err)
	}
	if item1 == nil || item2 == nil {
		return nil, apierr.New(http.StatusNotFound, apierr.CodeItemsNotFound, fmt.Errorf("one or more items not found for type %q", typeSlug))
	}

	result, err := rs.comparison.Assemble(ctx, transaction, cmpType.ID, []uuid.UUID{item1.ID, item2.ID})
	if err != nil {
		return nil, fmt.Errorf("assemble comparison: %w", err)
	}

	return &CompareView{Type: cmpType, Item1: item1, Item2: item2, Result: result}, nil
}

func (rs *resolveService) ResolveSingle(ctx context.Context, tx *gorm.DB, typeSlug, itemSlug string) (*SingleView, error) {
	transaction := tx
	if transaction == nil {
		transaction = rs.db
	}

	if strings.TrimSpace(itemSlug) == "" {
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeMissingParams, fmt.Errorf("item parameter required"))
	}

	cmpType, err := rs.resolveType(ctx, transaction, typeSlug)
	if err != nil {
		return nil, err
	}

	item, err := rs.itemRepo.GetActiveBySlug(ctx, transaction, cmpType.ID, itemSlug)
	if err != nil {
		return nil, fmt.Errorf("load item %q: %w", itemSlug, err)
	}
	if item == nil {
		return nil, apierr.New(http.StatusNotFound, apierr.CodeItemsNotFound, fmt.Errorf("item %q not found for type %q", itemSlug, typeSlug))
	}

	result, err := rs.comparison.Assemble(ctx, transaction, cmpType.ID, []uuid.UUID{item.ID})
	if err != nil {
		return nil, fmt.Errorf("assemble single view: %w", err)
	}

	return &SingleView{Type: cmpType, Item: item, Result: result}, nil
}

func splitItemSlugs(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
