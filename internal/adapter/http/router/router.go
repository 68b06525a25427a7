package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/barangay-ai/api-service/internal/adapter/http/handler"
	"github.com/ressKim-io/barangay-ai/api-service/internal/adapter/http/middleware"
	"github.com/ressKim-io/barangay-ai/api-service/internal/domain/service"
	"github.com/ressKim-io/barangay-ai/api-service/internal/infrastructure/metrics"
	"github.com/ressKim-io/barangay-ai/api-service/internal/usecase"
)

// Options carries the dependencies of the router
type Options struct {
	Classifier       service.Classifier
	Metrics          *metrics.Metrics
	Logger           *zap.Logger
	ValidateTaxonomy bool
}

// Setup creates and configures the Gin router
func Setup(opts Options) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics(opts.Metrics))

	// Health endpoints
	healthHandler := handler.NewHealthHandler(opts.Classifier)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	// Landing page and interactive docs
	homeHandler := handler.NewHomeHandler()
	router.GET("/", homeHandler.Home)

	docsHandler := handler.NewDocsHandler()
	router.GET("/docs", docsHandler.Docs)
	router.GET("/openapi.json", docsHandler.OpenAPI)

	// Initialize usecases
	classifyUC := usecase.NewClassifyUsecase(opts.Classifier, opts.Metrics, opts.Logger, opts.ValidateTaxonomy)

	// Initialize handlers
	classifyHandler := handler.NewClassifyHandler(classifyUC)

	// API routes
	api := router.Group("/api")
	{
		api.POST("/classify", classifyHandler.Classify)
	}

	return router
}
