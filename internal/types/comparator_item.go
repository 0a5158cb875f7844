package types

import (
	"time"

	"github.com/google/uuid"
)

// ComparatorItem is one comparable contract under a type. Slug is unique
// within its type. Only active items are eligible for listing or comparison.
type ComparatorItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TypeID         uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_item_type_slug" json:"type_id"`
	Type           *ComparatorType `gorm:"foreignKey:TypeID;references:ID" json:"type,omitempty"`
	Slug           string          `gorm:"column:slug;not null;uniqueIndex:idx_item_type_slug" json:"slug"`
	Name           string          `gorm:"column:name;not null" json:"name"`
	IsActive       bool            `gorm:"column:is_active;not null;default:true" json:"is_active"`
	SortOrder      int             `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	Contrat        string          `gorm:"column:contrat" json:"contrat"`
	Assureur       string          `gorm:"column:assureur" json:"assureur"`
	Version        string          `gorm:"column:version" json:"version"`
	Territorialite string          `gorm:"column:territorialite" json:"territorialite"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

func (ComparatorItem) TableName() string { return "comparator_item" }
