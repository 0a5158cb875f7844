package app

import (
	"strings"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/utils"
)

type Config struct {
	Port               string
	Environment        string
	AllowOrigins       []string
	MaxComparisonItems int
	FiltersEnabled     bool
	SEOPlugin          string
	AIOSEOMajorVersion int
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	origins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "", log), ",")
	allowOrigins := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			allowOrigins = append(allowOrigins, o)
		}
	}
	maxItems := utils.GetEnvAsInt("COMPARATOR_MAX_COMPARISON", 2, log)
	filtersEnabled := utils.GetEnvAsBool("COMPARATOR_FILTERS_ENABLED", true, log)
	seoPlugin := utils.GetEnv("COMPARATOR_SEO_PLUGIN", "none", log)
	aioseoMajor := utils.GetEnvAsInt("COMPARATOR_AIOSEO_MAJOR_VERSION", 4, log)
	return Config{
		Port:               port,
		Environment:        environment,
		AllowOrigins:       allowOrigins,
		MaxComparisonItems: maxItems,
		FiltersEnabled:     filtersEnabled,
		SEOPlugin:          seoPlugin,
		AIOSEOMajorVersion: aioseoMajor,
	}
}
