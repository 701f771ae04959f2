package syntax

import (
	"context"
	"time"

	"maya-nlp/internal/nlp"
	"maya-nlp/internal/signal"
	"maya-nlp/pkg/gnlp"
)

// GoogleClient is the subset of the Cloud Natural Language client in use.
type GoogleClient interface {
	AnalyzeSyntax(ctx context.Context, text string) ([]gnlp.Token, error)
	AnalyzeEntities(ctx context.Context, text string) ([]gnlp.Entity, error)
}

type googleTagger struct {
	c GoogleClient
}

// NewGoogle creates the remote syntax provider.
func NewGoogle(c GoogleClient, timeout time.Duration) *Provider {
	return New(nlp.BackendGoogle, googleTagger{c: c}, timeout)
}

func (g googleTagger) Tokens(ctx context.Context, text string) ([]Token, error) {
	toks, err := g.c.AnalyzeSyntax(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = Token{Text: t.Text, Tag: t.Tag}
	}
	return out, nil
}

func (g googleTagger) Entities(ctx context.Context, text string) ([]signal.NamedEntity, error) {
	ents, err := g.c.AnalyzeEntities(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]signal.NamedEntity, len(ents))
	for i, e := range ents {
		out[i] = signal.NamedEntity{Name: e.Name, Type: e.Type, Salience: e.Salience}
	}
	return out, nil
}
