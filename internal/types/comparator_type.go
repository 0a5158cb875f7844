package types

import (
	"time"

	"github.com/google/uuid"
)

// ComparatorType is a comparison category (e.g. a term life insurance line).
// Created and edited by administrators; read-only to the rendering path.
type ComparatorType struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug            string    `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	CustomTitle     string    `gorm:"column:custom_title" json:"custom_title"`
	MetaTitle       string    `gorm:"column:meta_title" json:"meta_title"`
	MetaDescription string    `gorm:"column:meta_description" json:"meta_description"`
	IntroText       string    `gorm:"column:intro_text" json:"intro_text"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

func (ComparatorType) TableName() string { return "comparator_type" }
