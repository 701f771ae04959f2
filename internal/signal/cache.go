package signal

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cachedProvider struct {
	next  Provider
	spans *expirable.LRU[string, []RawSpan]
}

type cachedEntityProvider struct {
	*cachedProvider
	next     EntityProvider
	entities *expirable.LRU[string, []NamedEntity]
}

// NewCache wraps p with an expiring LRU keyed by the analyzed text. Failed
// calls are not cached. When p also implements EntityProvider, so does the
// returned provider.
func NewCache(p Provider, size int, ttl time.Duration) Provider {
	if size <= 0 {
		return p
	}

	cp := &cachedProvider{
		next:  p,
		spans: expirable.NewLRU[string, []RawSpan](size, nil, ttl),
	}

	ep, ok := p.(EntityProvider)
	if !ok {
		return cp
	}
	return &cachedEntityProvider{
		cachedProvider: cp,
		next:           ep,
		entities:       expirable.NewLRU[string, []NamedEntity](size, nil, ttl),
	}
}

func (c *cachedProvider) Name() string { return c.next.Name() }

func (c *cachedProvider) Spans(ctx context.Context, text string) ([]RawSpan, error) {
	if spans, ok := c.spans.Get(text); ok {
		return copySpans(spans), nil
	}

	spans, err := c.next.Spans(ctx, text)
	if err != nil {
		return nil, err
	}
	c.spans.Add(text, copySpans(spans))
	return spans, nil
}

func (c *cachedEntityProvider) Entities(ctx context.Context, text string) ([]NamedEntity, error) {
	if ents, ok := c.entities.Get(text); ok {
		return append([]NamedEntity(nil), ents...), nil
	}

	ents, err := c.next.Entities(ctx, text)
	if err != nil {
		return nil, err
	}
	c.entities.Add(text, append([]NamedEntity(nil), ents...))
	return ents, nil
}

func copySpans(in []RawSpan) []RawSpan {
	out := make([]RawSpan, len(in))
	for i, s := range in {
		s.Value.Values = append([]string(nil), s.Value.Values...)
		out[i] = s
	}
	return out
}
