package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meta keys marking a page as comparator-owned and recording its triple.
const (
	MetaKeyComparatorPage  = "_wp_comparator_page"
	MetaKeyComparatorType  = "_wp_comparator_type"
	MetaKeyComparatorItem1 = "_wp_comparator_item1"
	MetaKeyComparatorItem2 = "_wp_comparator_item2"
)

// ComparisonPage is a materialized permalink page for one two-item
// comparison. The unique slug index is what makes get-or-create safe under
// concurrent first visits. Content is a re-entrant render directive, never
// a snapshot of comparison data.
type ComparisonPage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug      string    `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Content   string    `gorm:"column:content" json:"content"`
	TypeSlug  string    `gorm:"column:type_slug;not null;index" json:"type_slug"`
	Item1Slug string    `gorm:"column:item1_slug;not null" json:"item1_slug"`
	Item2Slug string    `gorm:"column:item2_slug;not null" json:"item2_slug"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ComparisonPage) TableName() string { return "comparison_page" }

// ComparisonPageMeta is one key/value row attached to a page. SEO plugin
// conventions write either plain text values or a JSON settings blob.
type ComparisonPageMeta struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PageID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_pagemeta_page_key" json:"page_id"`
	Page      *ComparisonPage `gorm:"foreignKey:PageID;references:ID" json:"page,omitempty"`
	MetaKey   string          `gorm:"column:meta_key;not null;uniqueIndex:idx_pagemeta_page_key" json:"meta_key"`
	MetaValue datatypes.JSON  `gorm:"column:meta_value;type:jsonb" json:"meta_value"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (ComparisonPageMeta) TableName() string { return "comparison_page_meta" }
