package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/repos"
)

func newComparisonService(t *testing.T, db *gorm.DB) ComparisonService {
	t.Helper()
	log := testLogger(t)
	return NewComparisonService(
		db,
		log,
		repos.NewFieldRepo(db, log),
		repos.NewValueRepo(db, log),
		repos.NewLongDescriptionRepo(db, log),
		nil,
	)
}

func TestAssembleTwoItems(t *testing.T) {
	db := testDB(t)
	f := seedFixture(t, db)
	svc := newComparisonService(t, db)

	result, err := svc.Assemble(context.Background(), nil, f.Type.ID, []uuid.UUID{f.Senseo.ID, f.Aviva.ID})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	// Vide has no populated field and must be dropped entirely.
	if len(result.Categories) != 2 {
		t.Fatalf("category count: want=2 got=%d", len(result.Categories))
	}
	if result.Categories[0].Category.Name != "Garanties" || result.Categories[1].Category.Name != "Options" {
		t.Fatalf("category order: got %q then %q",
			result.Categories[0].Category.Name, result.Categories[1].Category.Name)
	}

	garanties := result.Categories[0]
	// Fantôme has no value row for either item and must be dropped.
	if len(garanties.Fields) != 2 {
		t.Fatalf("garanties field count: want=2 got=%d", len(garanties.Fields))
	}
	if garanties.Fields[0].Field.Name != "Capital décès" || garanties.Fields[1].Field.Name != "Rente" {
		t.Fatalf("garanties field order: got %q then %q",
			garanties.Fields[0].Field.Name, garanties.Fields[1].Field.Name)
	}

	capital := garanties.Fields[0]
	if len(capital.Values) != 2 {
		t.Fatalf("capital slot count: want=2 got=%d", len(capital.Values))
	}
	if v := capital.Values[f.Senseo.ID]; v == nil || *v != "200 000 €" {
		t.Fatalf("capital senseo value: got %v", v)
	}
	if v := capital.Values[f.Aviva.ID]; v == nil || *v != "150 000 €" {
		t.Fatalf("capital aviva value: got %v", v)
	}
	if d := capital.LongDescriptions[f.Senseo.ID]; d == nil || *d != "Capital versé en une fois." {
		t.Fatalf("capital senseo long description: got %v", d)
	}
	if d := capital.LongDescriptions[f.Aviva.ID]; d != nil {
		t.Fatalf("capital aviva long description: want nil got %q", *d)
	}

	// Rente is kept although only one item has a value; the other slot is nil.
	rente := garanties.Fields[1]
	if v := rente.Values[f.Senseo.ID]; v == nil || *v != "Oui" {
		t.Fatalf("rente senseo value: got %v", v)
	}
	if v := rente.Values[f.Aviva.ID]; v != nil {
		t.Fatalf("rente aviva value: want nil got %q", *v)
	}
}

func TestAssembleSingleItem(t *testing.T) {
	db := testDB(t)
	f := seedFixture(t, db)
	svc := newComparisonService(t, db)

	result, err := svc.Assemble(context.Background(), nil, f.Type.ID, []uuid.UUID{f.Senseo.ID})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	// Options only has Aviva's value, so for Senseo alone it prunes away.
	if len(result.Categories) != 1 {
		t.Fatalf("category count: want=1 got=%d", len(result.Categories))
	}
	if result.Categories[0].Category.Name != "Garanties" {
		t.Fatalf("category: want=%q got=%q", "Garanties", result.Categories[0].Category.Name)
	}
	for _, field := range result.Categories[0].Fields {
		if len(field.Values) != 1 {
			t.Fatalf("field %q slot count: want=1 got=%d", field.Field.Name, len(field.Values))
		}
	}
}

func TestAssembleRejectsBadItemCount(t *testing.T) {
	db := testDB(t)
	f := seedFixture(t, db)
	svc := newComparisonService(t, db)

	if _, err := svc.Assemble(context.Background(), nil, f.Type.ID, nil); err == nil {
		t.Fatalf("Assemble with zero items: expected error")
	}
	three := []uuid.UUID{f.Senseo.ID, f.Aviva.ID, f.Inactive.ID}
	if _, err := svc.Assemble(context.Background(), nil, f.Type.ID, three); err == nil {
		t.Fatalf("Assemble with three items: expected error")
	}
}

func TestAssembleDeterministic(t *testing.T) {
	db := testDB(t)
	f := seedFixture(t, db)
	svc := newComparisonService(t, db)

	first, err := svc.Assemble(context.Background(), nil, f.Type.ID, []uuid.UUID{f.Senseo.ID, f.Aviva.ID})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	second, err := svc.Assemble(context.Background(), nil, f.Type.ID, []uuid.UUID{f.Senseo.ID, f.Aviva.ID})
	if err != nil {
		t.Fatalf("Assemble again: %v", err)
	}
	if len(first.Categories) != len(second.Categories) {
		t.Fatalf("category count changed between runs: %d then %d", len(first.Categories), len(second.Categories))
	}
	for i := range first.Categories {
		if first.Categories[i].Category.ID != second.Categories[i].Category.ID {
			t.Fatalf("category order changed at index %d", i)
		}
		if len(first.Categories[i].Fields) != len(second.Categories[i].Fields) {
			t.Fatalf("field count changed in category %q", first.Categories[i].Category.Name)
		}
	}
}
