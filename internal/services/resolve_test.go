package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/platform/apierr"
	"github.com/assurcompare/comparator-backend/internal/repos"
	"github.com/assurcompare/comparator-backend/internal/types"
)

// countingItemRepo wraps ItemRepo to observe how many item lookups a
// resolve performed. Validation order tests depend on lookups NOT happening.
type countingItemRepo struct {
	inner   repos.ItemRepo
	lookups int
}

func (c *countingItemRepo) GetActiveBySlug(ctx context.Context, tx *gorm.DB, typeID uuid.UUID, slug string) (*types.ComparatorItem, error) {
	c.lookups++
	return c.inner.GetActiveBySlug(ctx, tx, typeID, slug)
}

func (c *countingItemRepo) ListActiveByType(ctx context.Context, tx *gorm.DB, typeID uuid.UUID) ([]*types.ComparatorItem, error) {
	return c.inner.ListActiveByType(ctx, tx, typeID)
}

func newResolveService(t *testing.T, db *gorm.DB, itemRepo repos.ItemRepo) ResolveService {
	t.Helper()
	log := testLogger(t)
	if itemRepo == nil {
		itemRepo = repos.NewItemRepo(db, log)
	}
	comparison := newComparisonService(t, db)
	return NewResolveService(db, log, repos.NewTypeRepo(db, log), itemRepo, repos.NewFieldRepo(db, log), comparison)
}

func apiCodeOf(t *testing.T, err error) string {
	t.Helper()
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected apierr.Error, got %v", err)
	}
	return apiErr.Code
}

func TestResolveGrid(t *testing.T) {
	db := testDB(t)
	f := seedFixture(t, db)
	svc := newResolveService(t, db, nil)

	view, err := svc.ResolveGrid(context.Background(), nil, "prevoyance", true)
	if err != nil {
		t.Fatalf("ResolveGrid: %v", err)
	}
	if view.Type.ID != f.Type.ID {
		t.Fatalf("grid type: want=%s got=%s", f.Type.ID, view.Type.ID)
	}
	// Inactive items never show; order follows sort_order.
	if len(view.Items) != 2 {
		t.Fatalf("grid item count: want=2 got=%d", len(view.Items))
	}
	if view.Items[0].Slug != "prevoyance-plus" || view.Items[1].Slug != "senseo" {
		t.Fatalf("grid item order: got %q then %q", view.Items[0].Slug, view.Items[1].Slug)
	}
	if len(view.FilterableFields) != 1 || view.FilterableFields[0].ID != f.Filtrable.ID {
		t.Fatalf("filterable fields: got %d", len(view.FilterableFields))
	}
}

func TestResolveGridWithoutFilters(t *testing.T) {
	db := testDB(t)
	seedFixture(t, db)
	svc := newResolveService(t, db, nil)

	view, err := svc.ResolveGrid(context.Background(), nil, "prevoyance", false)
	if err != nil {
		t.Fatalf("ResolveGrid: %v", err)
	}
	if len(view.FilterableFields) != 0 {
		t.Fatalf("filters disabled: want no filterable fields, got %d", len(view.FilterableFields))
	}
}

func TestResolveGridTypeNotFound(t *testing.T) {
	db := testDB(t)
	seedFixture(t, db)
	svc := newResolveService(t, db, nil)

	_, err := svc.ResolveGrid(context.Background(), nil, "inconnu", false)
	if code := apiCodeOf(t, err); code != apierr.CodeTypeNotFound {
		t.Fatalf("error code: want=%q got=%q", apierr.CodeTypeNotFound, code)
	}
}

func TestResolveCompare(t *testing.T) {
	db := testDB(t)
	f := seedFixture(t, db)
	svc := newResolveService(t, db, nil)

	view, err := svc.ResolveCompare(context.Background(), nil, "prevoyance", "senseo,prevoyance-plus")
	if err != nil {
		t.Fatalf("ResolveCompare: %v", err)
	}
	if view.Item1.ID != f.Senseo.ID || view.Item2.ID != f.Aviva.ID {
		t.Fatalf("compare items: got %q and %q", view.Item1.Slug, view.Item2.Slug)
	}
	if len(view.Result.ItemIDs) != 2 {
		t.Fatalf("result item ids: want=2 got=%d", len(view.Result.ItemIDs))
	}
	if len(view.Result.Categories) == 0 {
		t.Fatalf("expected assembled categories")
	}
}

func TestResolveCompareTypeCheckedBeforeItems(t *testing.T) {
	db := testDB(t)
	seedFixture(t, db)
	log := testLogger(t)
	counter := &countingItemRepo{inner: repos.NewItemRepo(db, log)}
	svc := newResolveService(t, db, counter)

	_, err := svc.ResolveCompare(context.Background(), nil, "inconnu", "senseo,prevoyance-plus")
	if code := apiCodeOf(t, err); code != apierr.CodeTypeNotFound {
		t.Fatalf("error code: want=%q got=%q", apierr.CodeTypeNotFound, code)
	}
	if counter.lookups != 0 {
		t.Fatalf("item lookups on unknown type: want=0 got=%d", counter.lookups)
	}
}

func TestResolveCompareRequiresTwoDistinctItems(t *testing.T) {
	db := testDB(t)
	seedFixture(t, db)
	log := testLogger(t)
	counter := &countingItemRepo{inner: repos.NewItemRepo(db, log)}
	svc := newResolveService(t, db, counter)

	for _, csv := range []string{"senseo", "senseo,senseo", "a,b,c", "senseo, ,"} {
		_, err := svc.ResolveCompare(context.Background(), nil, "prevoyance", csv)
		if code := apiCodeOf(t, err); code != apierr.CodeExactlyTwoItems {
			t.Fatalf("items=%q error code: want=%q got=%q", csv, apierr.CodeExactlyTwoItems, code)
		}
	}
	if counter.lookups != 0 {
		t.Fatalf("item lookups on invalid selection: want=0 got=%d", counter.lookups)
	}
}

func TestResolveCompareMissingParams(t *testing.T) {
	db := testDB(t)
	seedFixture(t, db)
	svc := newResolveService(t, db, nil)

	_, err := svc.ResolveCompare(context.Background(), nil, "prevoyance", "  ")
	if code := apiCodeOf(t, err); code != apierr.CodeMissingParams {
		t.Fatalf("error code: want=%q got=%q", apierr.CodeMissingParams, code)
	}
	_, err = svc.ResolveCompare(context.Background(), nil, "", "senseo,prevoyance-plus")
	if code := apiCodeOf(t, err); code != apierr.CodeMissingParams {
		t.Fatalf("error code: want=%q got=%q", apierr.CodeMissingParams, code)
	}
}

func TestResolveCompareItemsNotFound(t *testing.T) {
	db := testDB(t)
	seedFixture(t, db)
	svc := newResolveService(t, db, nil)

	// Unknown and inactive slugs both count as missing.
	for _, csv := range []string{"senseo,inconnu", "senseo,retired"} {
		_, err := svc.ResolveCompare(context.Background(), nil, "prevoyance", csv)
		if code := apiCodeOf(t, err); code != apierr.CodeItemsNotFound {
			t.Fatalf("items=%q error code: want=%q got=%q", csv, apierr.CodeItemsNotFound, code)
		}
	}
}

func TestResolveSingle(t *testing.T) {
	db := testDB(t)
	f := seedFixture(t, db)
	svc := newResolveService(t, db, nil)

	view, err := svc.ResolveSingle(context.Background(), nil, "prevoyance", "senseo")
	if err != nil {
		t.Fatalf("ResolveSingle: %v", err)
	}
	if view.Item.ID != f.Senseo.ID {
		t.Fatalf("single item: want=%s got=%s", f.Senseo.ID, view.Item.ID)
	}
	if len(view.Result.ItemIDs) != 1 {
		t.Fatalf("result item ids: want=1 got=%d", len(view.Result.ItemIDs))
	}

	_, err = svc.ResolveSingle(context.Background(), nil, "prevoyance", "retired")
	if code := apiCodeOf(t, err); code != apierr.CodeItemsNotFound {
		t.Fatalf("inactive item error code: want=%q got=%q", apierr.CodeItemsNotFound, code)
	}
}
