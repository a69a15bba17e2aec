package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fairyhunter13/product-aggregator-simulator/internal/aggregate"
	"github.com/fairyhunter13/product-aggregator-simulator/internal/config"
	httpopenapi "github.com/fairyhunter13/product-aggregator-simulator/internal/http/openapi"
	"github.com/fairyhunter13/product-aggregator-simulator/internal/metrics"
	"github.com/fairyhunter13/product-aggregator-simulator/internal/remote"
)

type App struct {
	Cfg        config.Config
	Aggregator *aggregate.Service
	Logger     *zap.Logger
}

func NewApp(cfg config.Config, agg *aggregate.Service, logger *zap.Logger) *App {
	return &App{Cfg: cfg, Aggregator: agg, Logger: logger}
}

func (a *App) getCombinedHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		WriteJSONError(c, http.StatusBadRequest, "validation_error", "id must be a positive integer")
		return
	}
	res, err := a.Aggregator.Combine(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		code := "internal_error"
		branch := "catalog"
		var fe *remote.FetchError
		if errors.As(err, &fe) {
			status = http.StatusBadGateway
			code = "bad_gateway"
			branch = "remote"
		}
		metrics.RecordUpstreamFailure(branch)
		a.Logger.Error("combined_request_failed",
			zap.Int("id", id),
			zap.String("request_id", RequestID(c)),
			zap.Error(err),
		)
		WriteJSONError(c, status, code, "upstream fetch failed")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (a *App) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *App) openapiHandler(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", httpopenapi.YAML)
}

func (a *App) docsHandler(c *gin.Context) {
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
