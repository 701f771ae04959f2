package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"maya-nlp/internal/nlp"
	nlpHTTP "maya-nlp/internal/nlp/delivery/http"
	"maya-nlp/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   int
	gatherer    prometheus.Gatherer

	// NLP domain
	nlp      nlp.Service
	duckling nlpHTTP.RawParser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// RateLimitPerMin bounds analyze requests per client. 0 disables it.
	RateLimitPerMin int

	// Gatherer backs /metrics. Defaults to the global registry.
	Gatherer prometheus.Gatherer

	// NLP domain
	NLPService nlp.Service
	// Duckling serves the raw parse route in local environments. Optional.
	Duckling nlpHTTP.RawParser
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimitPerMin,
		gatherer:    cfg.Gatherer,
		nlp:         cfg.NLPService,
		duckling:    cfg.Duckling,
	}
	if srv.gatherer == nil {
		srv.gatherer = prometheus.DefaultGatherer
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.nlp == nil {
		return errors.New("nlp service is required")
	}
	return nil
}
