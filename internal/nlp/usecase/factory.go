package usecase

import (
	"context"
	"fmt"

	"maya-nlp/config"
	"maya-nlp/internal/nlp"
	"maya-nlp/internal/nlp/extract"
	"maya-nlp/internal/signal"
	signalDuckling "maya-nlp/internal/signal/duckling"
	"maya-nlp/internal/signal/pattern"
	"maya-nlp/internal/signal/syntax"
	"maya-nlp/pkg/datemath"
	pkgDuckling "maya-nlp/pkg/duckling"
	"maya-nlp/pkg/gnlp"
	pkgLog "maya-nlp/pkg/log"
	"maya-nlp/pkg/postag"
)

// Backends holds the analyzers built from config, in priority order.
type Backends struct {
	Analyzers []*Analyzer
	// Duckling is set when the duckling backend is configured.
	Duckling *pkgDuckling.Client
}

// List returns the analyzers as Manager backends.
func (b Backends) List() []Backend {
	out := make([]Backend, len(b.Analyzers))
	for i, a := range b.Analyzers {
		out[i] = a
	}
	return out
}

// InitializeBackends builds the implementation and fallback backends named in
// cfg. A backend that fails to initialize is skipped with a warning; it is an
// error only when none remain.
func InitializeBackends(ctx context.Context, cfg *config.Config, l pkgLog.Logger, metrics *Metrics) (Backends, error) {
	var out Backends
	for _, name := range cfg.Backends() {
		a, dc, err := buildAnalyzer(ctx, name, cfg, l, metrics)
		if err != nil {
			l.Warnf(ctx, "usecase.InitializeBackends: skipping %s: %v", name, err)
			continue
		}
		if a == nil {
			l.Infof(ctx, "usecase.InitializeBackends: %s disabled", name)
			continue
		}
		if dc != nil {
			out.Duckling = dc
		}
		out.Analyzers = append(out.Analyzers, a)
		l.Infof(ctx, "usecase.InitializeBackends: %s ready", name)
	}

	if len(out.Analyzers) == 0 {
		return Backends{}, nlp.ErrNoBackends
	}
	return out, nil
}

func buildAnalyzer(ctx context.Context, name string, cfg *config.Config, l pkgLog.Logger, metrics *Metrics) (*Analyzer, *pkgDuckling.Client, error) {
	switch name {
	case nlp.BackendPattern:
		p := pattern.New(datemath.NewDetector())
		return NewAnalyzer(p, l, WithMetrics(metrics)), nil, nil

	case nlp.BackendDuckling:
		client, err := pkgDuckling.New(pkgDuckling.Config{
			BaseURL:       cfg.Duckling.BaseURL,
			ParseEndpoint: cfg.Duckling.ParseEndpoint,
			Locale:        cfg.Duckling.Locale,
			Timeout:       cfg.Duckling.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		p := signal.NewCache(signalDuckling.New(client, cfg.Duckling.Timeout, l), cfg.Cache.Size, cfg.Cache.TTL)
		return NewAnalyzer(p, l, WithMetrics(metrics)), client, nil

	case nlp.BackendGoogle:
		var (
			client *gnlp.Client
			err    error
		)
		if cfg.GoogleNL.CredentialsPath != "" {
			client, err = gnlp.NewClientFromCredentialsFile(ctx, cfg.GoogleNL.CredentialsPath)
		} else {
			client, err = gnlp.NewClientFromDefaultCredentials(ctx)
		}
		if err != nil {
			return nil, nil, err
		}
		p := signal.NewCache(syntax.NewGoogle(client, cfg.GoogleNL.Timeout), cfg.Cache.Size, cfg.Cache.TTL)
		return NewAnalyzer(p, l, WithMetrics(metrics), WithTaskFunc(extract.TaskByMarkers)), nil, nil

	case nlp.BackendProse:
		if !cfg.Prose.Enabled {
			return nil, nil, nil
		}
		p := syntax.NewProse(postag.New(), cfg.Prose.Timeout)
		return NewAnalyzer(p, l, WithMetrics(metrics), WithTaskFunc(extract.TaskByMarkers)), nil, nil
	}

	return nil, nil, fmt.Errorf("%w: %s", nlp.ErrUnknownBackend, name)
}
