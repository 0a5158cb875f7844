package app

import (
	"github.com/gin-gonic/gin"

	"github.com/assurcompare/comparator-backend/internal/handlers"
	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/middleware"
	"github.com/assurcompare/comparator-backend/internal/render"
	"github.com/assurcompare/comparator-backend/internal/server"
)

type Handlers struct {
	Comparator *handlers.ComparatorHandler
	Page       *handlers.PageHandler
}

type Middleware struct {
	RequestLog *middleware.RequestLogMiddleware
}

func wireHandlers(log *logger.Logger, cfg Config, services Services, renderer *render.Renderer) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Comparator: handlers.NewComparatorHandler(log, services.Resolve, renderer, cfg.MaxComparisonItems, cfg.FiltersEnabled),
		Page:       handlers.NewPageHandler(log, services.Pages, services.Resolve, renderer),
	}
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		RequestLog: middleware.NewRequestLogMiddleware(log),
	}
}

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ComparatorHandler: handlerset.Comparator,
		PageHandler:       handlerset.Page,
		RequestLog:        middlewareset.RequestLog,
		AllowOrigins:      cfg.AllowOrigins,
	})
}
