package httpapi

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"

	"github.com/fairyhunter13/product-aggregator-simulator/internal/metrics"
)

// NewRouter registers HTTP routes and returns the engine with middleware.
func NewRouter(app *App) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(app.Logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(app.Logger, true))
	r.Use(WithRequestID())
	r.Use(WithMetrics())

	r.GET("/combined/:id", app.getCombinedHandler)
	r.GET("/healthz", app.healthHandler)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/openapi.yaml", app.openapiHandler)
	r.GET("/docs", app.docsHandler)
	return r
}
