// Package pattern finds temporal and duration spans locally, with a fixed
// duration regex plus a rule-based date/time detector.
package pattern

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"maya-nlp/internal/nlp"
	"maya-nlp/internal/signal"
	"maya-nlp/pkg/datemath"
)

const unitAlt = `(?:seconds?|minutes?|hours?|days?|weeks?|months?|years?)`

var durationRe = regexp.MustCompile(`(?i)\b\d+\s*` + unitAlt + `\b(?:\s+and\s+\d+\s*` + unitAlt + `\b)*`)

// Detector locates date/time mentions. *datemath.Detector satisfies it.
type Detector interface {
	Detect(text string, base time.Time) ([]datemath.Mention, error)
}

type Provider struct {
	detector Detector
	now      func() time.Time
}

// New creates a pattern provider. A nil detector limits it to durations.
func New(detector Detector) *Provider {
	return &Provider{detector: detector, now: time.Now}
}

func (p *Provider) Name() string { return nlp.BackendPattern }

// Spans returns duration spans, then detector spans that do not overlap any
// duration, sorted by start.
func (p *Provider) Spans(ctx context.Context, text string) ([]signal.RawSpan, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", nlp.ErrBackendUnavailable, err)
	}

	var spans []signal.RawSpan
	for _, loc := range durationRe.FindAllStringIndex(text, -1) {
		spans = append(spans, signal.RawSpan{
			Start: loc[0],
			End:   loc[1],
			Dim:   signal.DimDuration,
			Value: signal.SpanValue{Type: signal.DimDuration},
		})
	}
	durations := len(spans)

	if p.detector != nil {
		mentions, err := p.detector.Detect(text, p.now())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", nlp.ErrBackendUnavailable, err)
		}
		for _, m := range mentions {
			s := signal.RawSpan{Start: m.Start, End: m.End, Dim: signal.DimTime, Value: signal.SpanValue{Type: "value"}}
			if !s.Valid(len(text)) || overlapsAny(s, spans[:durations]) {
				continue
			}
			spans = append(spans, s)
		}
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans, nil
}

func overlapsAny(s signal.RawSpan, others []signal.RawSpan) bool {
	for _, o := range others {
		if s.Start < o.End && o.Start < s.End {
			return true
		}
	}
	return false
}
