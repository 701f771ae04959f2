package usecase

import (
	"maya-nlp/internal/nlp/extract"
	"maya-nlp/internal/signal"
	pkgLog "maya-nlp/pkg/log"
)

// Analyzer runs the extraction pipeline on top of one signal provider.
// It keeps no per-call state and is safe for concurrent use.
type Analyzer struct {
	name     string
	provider signal.Provider
	entities signal.EntityProvider
	task     extract.TaskFunc
	l        pkgLog.Logger
	metrics  *Metrics
}

type Option func(*Analyzer)

// WithTaskFunc overrides the task extraction strategy. The default removes
// the provider's spans from the text.
func WithTaskFunc(f extract.TaskFunc) Option {
	return func(a *Analyzer) { a.task = f }
}

func WithMetrics(m *Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// NewAnalyzer creates an Analyzer named after its provider. Providers that
// also recognize named entities contribute them to the result.
func NewAnalyzer(p signal.Provider, l pkgLog.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		name:     p.Name(),
		provider: p,
		task:     extract.TaskBySpans,
		l:        l,
	}
	if ep, ok := p.(signal.EntityProvider); ok {
		a.entities = ep
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) Name() string { return a.name }
