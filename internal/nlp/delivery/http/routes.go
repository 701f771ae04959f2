package http

import (
	"maya-nlp/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the nlp endpoints. Analyze is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/analyze", mw.RateLimit(), h.Analyze)
	rg.GET("/backends", h.Backends)
}

// RegisterDebugRoutes maps endpoints meant for local environments only.
func RegisterDebugRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/duckling/raw", h.DucklingRaw)
}
