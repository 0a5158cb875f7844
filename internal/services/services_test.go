package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&types.ComparatorType{},
		&types.ComparatorItem{},
		&types.ComparatorField{},
		&types.ComparatorValue{},
		&types.FieldLongDescription{},
		&types.ComparisonPage{},
		&types.ComparisonPageMeta{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// fixture is one comparator type with two active items, one inactive item,
// and a small field tree with deliberate gaps so pruning has something to
// prune.
type fixture struct {
	Type     *types.ComparatorType
	Senseo   *types.ComparatorItem
	Aviva    *types.ComparatorItem
	Inactive *types.ComparatorItem

	Garanties *types.ComparatorField // category, both fields populated or partial
	Options   *types.ComparatorField // category, one populated field
	Vide      *types.ComparatorField // category with no populated field

	Capital    *types.ComparatorField // value for both items
	Rente      *types.ComparatorField // value for senseo only
	Fantome    *types.ComparatorField // no value rows at all
	Assistance *types.ComparatorField // value for aviva only
	Filtrable  *types.ComparatorField // filterable field under Vide, no values
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	f := &fixture{}
	f.Type = &types.ComparatorType{
		ID:              uuid.New(),
		Slug:            "prevoyance",
		Name:            "Prévoyance",
		MetaTitle:       "Comparez {contrat1} et {contrat2}",
		MetaDescription: "Comparatif {contrat1} ({assureur1}) contre {contrat2} ({assureur2}).",
		IntroText:       "Comparaison de {name1} et {name2}.",
	}
	if err := db.Create(f.Type).Error; err != nil {
		t.Fatalf("seed type: %v", err)
	}

	f.Senseo = &types.ComparatorItem{
		ID: uuid.New(), TypeID: f.Type.ID, Slug: "senseo", Name: "Senseo",
		IsActive: true, SortOrder: 1, Contrat: "Senseo", Assureur: "Aviva",
	}
	f.Aviva = &types.ComparatorItem{
		ID: uuid.New(), TypeID: f.Type.ID, Slug: "prevoyance-plus", Name: "Prévoyance+",
		IsActive: true, SortOrder: 0, Contrat: "Prévoyance+", Assureur: "April",
	}
	f.Inactive = &types.ComparatorItem{
		ID: uuid.New(), TypeID: f.Type.ID, Slug: "retired", Name: "Retired",
		IsActive: false, SortOrder: 2,
	}
	for _, item := range []*types.ComparatorItem{f.Senseo, f.Aviva, f.Inactive} {
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("seed item %s: %v", item.Slug, err)
		}
	}
	// GORM skips zero-value fields that carry a default tag, so Create stores
	// the inactive item as active; force the flag through.
	if err := db.Model(f.Inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate item %s: %v", f.Inactive.Slug, err)
	}

	f.Garanties = &types.ComparatorField{
		ID: uuid.New(), TypeID: f.Type.ID, FieldType: types.FieldTypeCategory,
		Name: "Garanties", SortOrder: 0,
	}
	f.Options = &types.ComparatorField{
		ID: uuid.New(), TypeID: f.Type.ID, FieldType: types.FieldTypeCategory,
		Name: "Options", SortOrder: 1,
	}
	f.Vide = &types.ComparatorField{
		ID: uuid.New(), TypeID: f.Type.ID, FieldType: types.FieldTypeCategory,
		Name: "Vide", SortOrder: 2,
	}
	for _, cat := range []*types.ComparatorField{f.Garanties, f.Options, f.Vide} {
		if err := db.Create(cat).Error; err != nil {
			t.Fatalf("seed category %s: %v", cat.Name, err)
		}
	}

	f.Capital = &types.ComparatorField{
		ID: uuid.New(), TypeID: f.Type.ID, FieldType: types.FieldTypeDescription,
		ParentCategoryID: &f.Garanties.ID, Name: "Capital décès", SortOrder: 0,
	}
	f.Rente = &types.ComparatorField{
		ID: uuid.New(), TypeID: f.Type.ID, FieldType: types.FieldTypeDescription,
		ParentCategoryID: &f.Garanties.ID, Name: "Rente", SortOrder: 1,
	}
	f.Fantome = &types.ComparatorField{
		ID: uuid.New(), TypeID: f.Type.ID, FieldType: types.FieldTypeDescription,
		ParentCategoryID: &f.Garanties.ID, Name: "Fantôme", SortOrder: 2,
	}
	f.Assistance = &types.ComparatorField{
		ID: uuid.New(), TypeID: f.Type.ID, FieldType: types.FieldTypeDescription,
		ParentCategoryID: &f.Options.ID, Name: "Assistance", SortOrder: 0,
	}
	f.Filtrable = &types.ComparatorField{
		ID: uuid.New(), TypeID: f.Type.ID, FieldType: types.FieldTypeDescription,
		ParentCategoryID: &f.Vide.ID, Name: "Filtrable", SortOrder: 0, IsFilterable: true,
	}
	for _, field := range []*types.ComparatorField{f.Capital, f.Rente, f.Fantome, f.Assistance, f.Filtrable} {
		if err := db.Create(field).Error; err != nil {
			t.Fatalf("seed field %s: %v", field.Name, err)
		}
	}

	values := []*types.ComparatorValue{
		{ID: uuid.New(), ItemID: f.Senseo.ID, FieldID: f.Capital.ID, Value: "200 000 €"},
		{ID: uuid.New(), ItemID: f.Aviva.ID, FieldID: f.Capital.ID, Value: "150 000 €"},
		{ID: uuid.New(), ItemID: f.Senseo.ID, FieldID: f.Rente.ID, Value: "Oui"},
		{ID: uuid.New(), ItemID: f.Aviva.ID, FieldID: f.Assistance.ID, Value: "Incluse"},
	}
	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed value: %v", err)
		}
	}

	long := &types.FieldLongDescription{
		ID: uuid.New(), ItemID: f.Senseo.ID, FieldID: f.Capital.ID,
		LongDescription: "Capital versé en une fois.",
	}
	if err := db.Create(long).Error; err != nil {
		t.Fatalf("seed long description: %v", err)
	}

	return f
}
