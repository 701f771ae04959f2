package usecase

import (
	"context"
	"errors"
	"fmt"

	"maya-nlp/internal/model"
	"maya-nlp/internal/nlp"
	pkgLog "maya-nlp/pkg/log"
)

// Backend is one named extraction backend.
type Backend interface {
	nlp.UseCase
	Name() string
}

var (
	_ nlp.Service = (*Manager)(nil)
	_ Backend     = (*Analyzer)(nil)
)

// Config defines how the Manager walks its backends.
type Config struct {
	// FallbackEnabled lets an unavailable backend hand over to the next one.
	FallbackEnabled bool
}

// Manager orchestrates backend selection and fallback. The first backend is
// the default.
type Manager struct {
	backends []Backend
	config   Config
	l        pkgLog.Logger
}

// NewManager creates a Manager over backends in priority order.
func NewManager(backends []Backend, config Config, l pkgLog.Logger) (*Manager, error) {
	if len(backends) == 0 {
		return nil, nlp.ErrNoBackends
	}
	return &Manager{backends: backends, config: config, l: l}, nil
}

// Backends returns the configured backend names in priority order.
func (m *Manager) Backends() []string {
	names := make([]string, len(m.backends))
	for i, b := range m.backends {
		names[i] = b.Name()
	}
	return names
}

// AnalyzeText analyzes text with the default backend chain.
func (m *Manager) AnalyzeText(ctx context.Context, text string) ([]model.EntityInfo, error) {
	out, err := m.Analyze(ctx, nlp.AnalyzeInput{Text: text})
	if err != nil {
		return nil, err
	}
	return out.Entities, nil
}

// Analyze tries the requested backend first, then the rest in priority
// order. Only backend unavailability moves on to the next backend.
func (m *Manager) Analyze(ctx context.Context, input nlp.AnalyzeInput) (nlp.AnalyzeOutput, error) {
	chain, err := m.chain(input.Backend)
	if err != nil {
		return nlp.AnalyzeOutput{}, err
	}

	var lastErr error
	for i, b := range chain {
		if i > 0 {
			if err := ctx.Err(); err != nil {
				return nlp.AnalyzeOutput{}, &nlp.AnalysisError{Kind: nlp.ErrBackendUnavailable, Backend: b.Name(), Err: err}
			}
			m.l.Infof(ctx, "usecase.Manager.Analyze: falling back to %s", b.Name())
		}

		entities, err := b.AnalyzeText(ctx, input.Text)
		if err == nil {
			return nlp.AnalyzeOutput{Entities: entities, Backend: b.Name()}, nil
		}

		lastErr = err
		if !errors.Is(err, nlp.ErrBackendUnavailable) || !m.config.FallbackEnabled {
			break
		}
		m.l.Warnf(ctx, "usecase.Manager.Analyze: backend %s unavailable: %v", b.Name(), err)
	}

	return nlp.AnalyzeOutput{}, lastErr
}

// chain orders the backends with the requested one first.
func (m *Manager) chain(requested string) ([]Backend, error) {
	if requested == "" {
		return m.backends, nil
	}

	for i, b := range m.backends {
		if b.Name() != requested {
			continue
		}
		chain := make([]Backend, 0, len(m.backends))
		chain = append(chain, b)
		chain = append(chain, m.backends[:i]...)
		return append(chain, m.backends[i+1:]...), nil
	}

	if nlp.IsKnownBackend(requested) {
		return nil, fmt.Errorf("%w: %s is not configured", nlp.ErrUnknownBackend, requested)
	}
	return nil, fmt.Errorf("%w: %s", nlp.ErrUnknownBackend, requested)
}
