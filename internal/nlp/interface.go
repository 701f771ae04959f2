package nlp

import (
	"context"

	"maya-nlp/internal/model"
)

// UseCase extracts entities from a single command text with one backend.
//
//go:generate mockery --name UseCase
type UseCase interface {
	AnalyzeText(ctx context.Context, text string) ([]model.EntityInfo, error)
}

// Service is the caller-facing entry point. It picks a backend and falls
// back across the configured ones when a backend is unavailable.
type Service interface {
	UseCase
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	Backends() []string
}
