package types

import (
	"time"

	"github.com/google/uuid"
)

// ComparatorValue is the scalar answer of one description field for one
// item. At most one row per (item, field) pair.
type ComparatorValue struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_value_item_field" json:"item_id"`
	Item      *ComparatorItem  `gorm:"foreignKey:ItemID;references:ID" json:"item,omitempty"`
	FieldID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_value_item_field" json:"field_id"`
	Field     *ComparatorField `gorm:"foreignKey:FieldID;references:ID" json:"field,omitempty"`
	Value     string           `gorm:"column:value" json:"value"`
	CreatedAt time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time        `gorm:"not null" json:"updated_at"`
}

func (ComparatorValue) TableName() string { return "comparator_value" }

// FieldLongDescription is the optional extended text for the same (item,
// field) pair. Lifecycle independent from ComparatorValue.
type FieldLongDescription struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID          uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_longdesc_item_field" json:"item_id"`
	Item            *ComparatorItem  `gorm:"foreignKey:ItemID;references:ID" json:"item,omitempty"`
	FieldID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_longdesc_item_field" json:"field_id"`
	Field           *ComparatorField `gorm:"foreignKey:FieldID;references:ID" json:"field,omitempty"`
	LongDescription string           `gorm:"column:long_description" json:"long_description"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`
}

func (FieldLongDescription) TableName() string { return "comparator_field_description" }
