package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	internalmiddleware "github.com/noah-isme/student-context-mcp/internal/middleware"
	"github.com/noah-isme/student-context-mcp/internal/service"
	"github.com/noah-isme/student-context-mcp/pkg/config"
	appErrors "github.com/noah-isme/student-context-mcp/pkg/errors"
	"github.com/noah-isme/student-context-mcp/pkg/logger"
	corsmiddleware "github.com/noah-isme/student-context-mcp/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/student-context-mcp/pkg/middleware/requestid"
	"github.com/noah-isme/student-context-mcp/pkg/response"
)

// RouterDeps carries everything the HTTP surface is built from.
type RouterDeps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Registry *service.Registry
	Metrics  *service.MetricsService
	MCP      http.Handler
}

// NewRouter mounts the MCP endpoint, the JSON API and the operational routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(deps.Metrics))

	metricsHandler := NewMetricsHandler(deps.Metrics, func() bool {
		return deps.Registry != nil && len(deps.Registry.Operations()) > 0
	})
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Docs.Enabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if deps.MCP != nil {
		r.Any(cfg.MCP.EndpointPath, gin.WrapH(deps.MCP))
	}

	ops := NewOperationsHandler(deps.Registry)
	api := r.Group("/api/v1")
	api.GET("/operations", ops.List)
	api.POST("/operations/call", ops.Call)
	api.GET("/students/:student_id/profile", ops.Profile)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.ErrNotFound)
	})
	return r
}
