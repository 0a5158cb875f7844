package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/assurcompare/comparator-backend/internal/handlers"
	"github.com/assurcompare/comparator-backend/internal/middleware"
)

type RouterConfig struct {
	ComparatorHandler *handlers.ComparatorHandler
	PageHandler       *handlers.PageHandler
	RequestLog        *middleware.RequestLogMiddleware
	AllowOrigins      []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("comparator-backend"))
	router.Use(cfg.RequestLog.Handler())

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Dynamic ?type=&compare=a,b queries redirect to their permalink
	// before any route matches; failures fall through.
	router.Use(cfg.PageHandler.RedirectDynamic())

	router.GET("/healthcheck", handlers.HealthCheck)

	comparator := router.Group("/comparator")
	{
		comparator.GET("/grid", cfg.ComparatorHandler.Grid)
		comparator.GET("/compare", cfg.ComparatorHandler.Compare)
		comparator.GET("/single", cfg.ComparatorHandler.Single)
	}

	api := router.Group("/api")
	{
		api.POST("/pages", cfg.PageHandler.Create)
	}

	// Pretty comparison permalinks are matched from NoRoute; everything
	// else stays a 404.
	router.NoRoute(cfg.PageHandler.View)

	return router
}
