// Package duckling adapts a Duckling server to the signal contract.
package duckling

import (
	"context"
	"fmt"
	"time"
	"unicode/utf16"

	"maya-nlp/internal/nlp"
	"maya-nlp/internal/signal"
	pkgDuckling "maya-nlp/pkg/duckling"
	"maya-nlp/pkg/log"
)

// Client is the subset of the Duckling API the provider needs.
type Client interface {
	Parse(ctx context.Context, text string, reftime time.Time) ([]pkgDuckling.Entity, error)
}

type Provider struct {
	client  Client
	timeout time.Duration
	l       log.Logger
	now     func() time.Time
}

// New creates a Duckling-backed provider. A zero timeout leaves the call
// bounded only by the caller's context.
func New(client Client, timeout time.Duration, l log.Logger) *Provider {
	return &Provider{client: client, timeout: timeout, l: l, now: time.Now}
}

func (p *Provider) Name() string { return nlp.BackendDuckling }

// Spans parses text remotely. Latent readings (a bare "3") are skipped.
func (p *Provider) Spans(ctx context.Context, text string) ([]signal.RawSpan, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	entities, err := p.client.Parse(ctx, text, p.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", nlp.ErrBackendUnavailable, err)
	}

	spans := make([]signal.RawSpan, 0, len(entities))
	for _, e := range entities {
		if e.Latent {
			continue
		}

		values := make([]string, 0, len(e.Value.Values))
		for _, v := range e.Value.Values {
			values = append(values, v.String())
		}

		spans = append(spans, signal.RawSpan{
			Start: utf16ToByteOffset(text, e.Start),
			End:   utf16ToByteOffset(text, e.End),
			Dim:   e.Dim,
			Value: signal.SpanValue{Type: e.Value.Type, Grain: e.Value.Grain, Values: values},
		})
	}

	p.l.Debugf(ctx, "%s: %d spans from %d entities", logPrefix, len(spans), len(entities))
	return spans, nil
}

const logPrefix = "signal.duckling.Spans"

// utf16ToByteOffset converts a UTF-16 code-unit offset into a byte offset
// in text. Offsets past the end map to len(text)+1 so bound checks fail.
func utf16ToByteOffset(text string, units int) int {
	if units < 0 {
		return units
	}
	count := 0
	for i, r := range text {
		// count > units means the offset split a surrogate pair; snap forward.
		if count >= units {
			return i
		}
		count += utf16.RuneLen(r)
	}
	if count == units {
		return len(text)
	}
	return len(text) + 1
}
