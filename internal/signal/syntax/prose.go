package syntax

import (
	"context"
	"time"

	"maya-nlp/internal/nlp"
	"maya-nlp/internal/signal"
	"maya-nlp/pkg/postag"
)

// LocalTagger is the subset of the local prose tagger in use.
type LocalTagger interface {
	Tag(ctx context.Context, text string) ([]postag.Token, error)
	Entities(ctx context.Context, text string) ([]postag.Entity, error)
}

type proseTagger struct {
	t LocalTagger
}

// NewProse creates the local syntax provider.
func NewProse(t LocalTagger, timeout time.Duration) *Provider {
	return New(nlp.BackendProse, proseTagger{t: t}, timeout)
}

func (p proseTagger) Tokens(ctx context.Context, text string) ([]Token, error) {
	toks, err := p.t.Tag(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = Token{Text: t.Text, Tag: t.Tag}
	}
	return out, nil
}

func (p proseTagger) Entities(ctx context.Context, text string) ([]signal.NamedEntity, error) {
	ents, err := p.t.Entities(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]signal.NamedEntity, len(ents))
	for i, e := range ents {
		out[i] = signal.NamedEntity{Name: e.Name, Type: e.Type, Salience: e.Salience}
	}
	return out, nil
}
