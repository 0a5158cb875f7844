package render

import (
	"github.com/assurcompare/comparator-backend/internal/services"
	"github.com/assurcompare/comparator-backend/internal/types"
)

type GridData struct {
	Type         *types.ComparatorType
	Items        []*types.ComparatorItem
	Filters      []*types.ComparatorField
	Columns      int
	MaxSelection int
}

type CompareRow struct {
	Name  string
	Has1  bool
	Val1  string
	Long1 string
	Has2  bool
	Val2  string
	Long2 string
}

type CompareSection struct {
	Title string
	Rows  []CompareRow
}

type CompareData struct {
	Type     *types.ComparatorType
	Item1    *types.ComparatorItem
	Item2    *types.ComparatorItem
	Sections []CompareSection
}

type SingleRow struct {
	Name string
	Has  bool
	Val  string
	Long string
}

type SingleSection struct {
	Title string
	Rows  []SingleRow
}

type SingleData struct {
	Type     *types.ComparatorType
	Item     *types.ComparatorItem
	Sections []SingleSection
}

type PageData struct {
	Title           string
	MetaTitle       string
	MetaDescription string
	Intro           string
	CanonicalPath   string
	Compare         *CompareData
}

func BuildGridData(view *services.GridView, columns, maxSelection int) *GridData {
	return &GridData{
		Type:         view.Type,
		Items:        view.Items,
		Filters:      view.FilterableFields,
		Columns:      columns,
		MaxSelection: maxSelection,
	}
}

func BuildCompareData(view *services.CompareView) *CompareData {
	data := &CompareData{
		Type:  view.Type,
		Item1: view.Item1,
		Item2: view.Item2,
	}
	for _, category := range view.Result.Categories {
		section := CompareSection{Title: category.Category.Name}
		for _, field := range category.Fields {
			row := CompareRow{Name: field.Field.Name}
			if v := field.Values[view.Item1.ID]; v != nil {
				row.Has1, row.Val1 = true, *v
			}
			if d := field.LongDescriptions[view.Item1.ID]; d != nil {
				row.Long1 = *d
			}
			if v := field.Values[view.Item2.ID]; v != nil {
				row.Has2, row.Val2 = true, *v
			}
			if d := field.LongDescriptions[view.Item2.ID]; d != nil {
				row.Long2 = *d
			}
			section.Rows = append(section.Rows, row)
		}
		data.Sections = append(data.Sections, section)
	}
	return data
}

func BuildSingleData(view *services.SingleView) *SingleData {
	data := &SingleData{
		Type: view.Type,
		Item: view.Item,
	}
	for _, category := range view.Result.Categories {
		section := SingleSection{Title: category.Category.Name}
		for _, field := range category.Fields {
			row := SingleRow{Name: field.Field.Name}
			if v := field.Values[view.Item.ID]; v != nil {
				row.Has, row.Val = true, *v
			}
			if d := field.LongDescriptions[view.Item.ID]; d != nil {
				row.Long = *d
			}
			section.Rows = append(section.Rows, row)
		}
		data.Sections = append(data.Sections, section)
	}
	return data
}
