package types

import "github.com/google/uuid"

// ComparisonResult is the derived, non-persisted output of the assembler:
// ordered categories, each with ordered description fields, each carrying
// one value slot and one long-description slot per requested item. A nil
// slot means no row exists; absence is data, not failure.
type ComparisonResult struct {
	TypeID     uuid.UUID             `json:"type_id"`
	ItemIDs    []uuid.UUID           `json:"item_ids"`
	Categories []*ComparisonCategory `json:"categories"`
}

type ComparisonCategory struct {
	Category *ComparatorField   `json:"category"`
	Fields   []*ComparisonField `json:"fields"`
}

type ComparisonField struct {
	Field            *ComparatorField      `json:"field"`
	Values           map[uuid.UUID]*string `json:"values"`
	LongDescriptions map[uuid.UUID]*string `json:"long_descriptions"`
}
