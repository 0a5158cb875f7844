package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	FieldTypeCategory    = "category"
	FieldTypeDescription = "description"
)

// ComparatorField is a node in the two-level field tree of a type. A
// category groups description fields; descriptions reference their parent
// category and are the only fields that carry values.
type ComparatorField struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	TypeID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"type_id"`
	Type             *ComparatorType  `gorm:"foreignKey:TypeID;references:ID" json:"type,omitempty"`
	FieldType        string           `gorm:"column:field_type;not null" json:"field_type"`
	ParentCategoryID *uuid.UUID       `gorm:"type:uuid;index" json:"parent_category_id,omitempty"`
	ParentCategory   *ComparatorField `gorm:"foreignKey:ParentCategoryID;references:ID" json:"parent_category,omitempty"`
	Name             string           `gorm:"column:name;not null" json:"name"`
	IsFilterable     bool             `gorm:"column:is_filterable;not null;default:false" json:"is_filterable"`
	SortOrder        int              `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	CreatedAt        time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"not null" json:"updated_at"`
}

func (ComparatorField) TableName() string { return "comparator_field" }
