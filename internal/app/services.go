package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/cache"
	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/seo"
	"github.com/assurcompare/comparator-backend/internal/services"
)

type Services struct {
	Comparison services.ComparisonService
	Resolve    services.ResolveService
	Pages      services.PageService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, renderCache *cache.Cache) (Services, error) {
	log.Info("Wiring services...")

	seoWriter, err := seo.NewWriter(cfg.SEOPlugin, cfg.AIOSEOMajorVersion, reposet.PageMeta, log)
	if err != nil {
		return Services{}, fmt.Errorf("init seo writer: %w", err)
	}

	comparison := services.NewComparisonService(db, log, reposet.Field, reposet.Value, reposet.LongDescription, renderCache)
	resolve := services.NewResolveService(db, log, reposet.Type, reposet.Item, reposet.Field, comparison)
	pages := services.NewPageService(db, log, reposet.Type, reposet.Item, reposet.Page, reposet.PageMeta, seoWriter)

	return Services{
		Comparison: comparison,
		Resolve:    resolve,
		Pages:      pages,
	}, nil
}
