package http

import (
	"context"

	"maya-nlp/internal/nlp"
	"maya-nlp/pkg/log"
)

// RawParser returns the unprocessed Duckling response for a text.
type RawParser interface {
	Raw(ctx context.Context, text string) ([]byte, error)
}

type handler struct {
	l   log.Logger
	svc nlp.Service
	raw RawParser
}

// New creates the HTTP handler for the nlp domain. raw may be nil when the
// duckling backend is not configured.
func New(l log.Logger, svc nlp.Service, raw RawParser) *handler {
	return &handler{
		l:   l,
		svc: svc,
		raw: raw,
	}
}
