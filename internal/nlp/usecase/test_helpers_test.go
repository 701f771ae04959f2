package usecase

import (
	"context"

	"maya-nlp/internal/model"
	"maya-nlp/internal/signal"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock span provider for testing
type mockProvider struct {
	spans []signal.RawSpan
	err   error
	calls int
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Spans(ctx context.Context, text string) ([]signal.RawSpan, error) {
	m.calls++
	return m.spans, m.err
}

// Mock provider that also recognizes named entities
type mockEntityProvider struct {
	mockProvider
	named    []signal.NamedEntity
	namedErr error
}

func (m *mockEntityProvider) Entities(ctx context.Context, text string) ([]signal.NamedEntity, error) {
	return m.named, m.namedErr
}

// Mock backend for Manager tests
type mockBackend struct {
	name     string
	entities []model.EntityInfo
	err      error
	calls    int
}

func (m *mockBackend) Name() string { return m.name }

func (m *mockBackend) AnalyzeText(ctx context.Context, text string) ([]model.EntityInfo, error) {
	m.calls++
	return m.entities, m.err
}
