// Package signal defines the raw-signal contract every extraction backend
// satisfies, plus decorators shared by the remote backends.
package signal

import "context"

// Span dimensions.
const (
	DimTime     = "time"
	DimDuration = "duration"
)

// SpanValue carries the backend's structured reading of a span. Grain plus
// more than one candidate value marks a recurring expression.
type SpanValue struct {
	Type   string
	Grain  string
	Values []string
}

// RawSpan is a temporal or duration mention. Start and End are byte offsets
// into the analyzed text, End exclusive.
type RawSpan struct {
	Start int
	End   int
	Dim   string
	Value SpanValue
}

// Valid reports whether the span lies inside a text of length n.
func (s RawSpan) Valid(n int) bool {
	return s.Start >= 0 && s.Start < s.End && s.End <= n
}

// Recurring reports whether the value signals a repeating expression.
func (s RawSpan) Recurring() bool {
	return s.Value.Grain != "" && len(s.Value.Values) > 1
}

// NamedEntity is a generic entity reported by a recognizer.
type NamedEntity struct {
	Name     string
	Type     string
	Salience float32
}

// Provider returns temporal/duration spans for a text, in any order.
// I/O failures are reported wrapping nlp.ErrBackendUnavailable.
type Provider interface {
	Name() string
	Spans(ctx context.Context, text string) ([]RawSpan, error)
}

// EntityProvider is implemented by backends that also recognize named entities.
type EntityProvider interface {
	Entities(ctx context.Context, text string) ([]NamedEntity, error)
}
