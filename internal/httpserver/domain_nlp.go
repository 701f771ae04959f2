package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"maya-nlp/internal/middleware"
	"maya-nlp/internal/model"
	nlpHTTP "maya-nlp/internal/nlp/delivery/http"
)

// setupNLPDomain registers /api/v1/nlp. The raw Duckling route exists only
// in local environments.
func (srv HTTPServer) setupNLPDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := nlpHTTP.New(srv.l, srv.nlp, srv.duckling)

	g := api.Group("/nlp")
	nlpHTTP.RegisterRoutes(g, h, mw)

	if srv.environment == string(model.EnvironmentLocal) {
		nlpHTTP.RegisterDebugRoutes(g, h)
		srv.l.Infof(ctx, "Debug route registered at POST /api/v1/nlp/duckling/raw")
	}

	srv.l.Infof(ctx, "NLP domain registered, backends: %v", srv.nlp.Backends())
	return nil
}
