package app

import (
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/repos"
)

type Repos struct {
	Type            repos.TypeRepo
	Item            repos.ItemRepo
	Field           repos.FieldRepo
	Value           repos.ValueRepo
	LongDescription repos.LongDescriptionRepo
	Page            repos.PageRepo
	PageMeta        repos.PageMetaRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Type:            repos.NewTypeRepo(db, log),
		Item:            repos.NewItemRepo(db, log),
		Field:           repos.NewFieldRepo(db, log),
		Value:           repos.NewValueRepo(db, log),
		LongDescription: repos.NewLongDescriptionRepo(db, log),
		Page:            repos.NewPageRepo(db, log),
		PageMeta:        repos.NewPageMetaRepo(db, log),
	}
}
