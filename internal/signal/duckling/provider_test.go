package duckling

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maya-nlp/internal/nlp"
	"maya-nlp/internal/signal"
	pkgDuckling "maya-nlp/pkg/duckling"
	"maya-nlp/pkg/log"
)

type fakeClient struct {
	entities []pkgDuckling.Entity
	err      error
	deadline bool
}

func (f *fakeClient) Parse(ctx context.Context, text string, reftime time.Time) ([]pkgDuckling.Entity, error) {
	_, f.deadline = ctx.Deadline()
	return f.entities, f.err
}

func TestSpans(t *testing.T) {
	client := &fakeClient{entities: []pkgDuckling.Entity{
		{Start: 19, End: 37, Dim: "time", Value: pkgDuckling.Value{
			Type:  "value",
			Grain: "hour",
			Values: []pkgDuckling.Candidate{
				{Value: json.RawMessage(`"2026-10-20T15:00:00.000Z"`)},
				{Value: json.RawMessage(`"2026-10-27T15:00:00.000Z"`)},
			},
		}},
		{Start: 0, End: 3, Dim: "time", Latent: true},
	}}
	p := New(client, time.Second, log.NewNop())

	text := "Set a reminder for every Tuesday at 3pm to review weekly metrics"
	spans, err := p.Spans(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, spans, 1)

	assert.True(t, client.deadline, "provider must bound the call with its timeout")
	assert.Equal(t, "every Tuesday at 3", text[spans[0].Start:spans[0].End])
	assert.Equal(t, signal.SpanValue{
		Type:   "value",
		Grain:  "hour",
		Values: []string{"2026-10-20T15:00:00.000Z", "2026-10-27T15:00:00.000Z"},
	}, spans[0].Value)
	assert.True(t, spans[0].Recurring())
	assert.Equal(t, nlp.BackendDuckling, p.Name())
}

func TestSpansBackendError(t *testing.T) {
	p := New(&fakeClient{err: errors.New("connection refused")}, time.Second, log.NewNop())
	_, err := p.Spans(context.Background(), "set alarm")
	assert.ErrorIs(t, err, nlp.ErrBackendUnavailable)
}

func TestUTF16ToByteOffset(t *testing.T) {
	text := "café 🎉 at 5pm"
	// c a f é = 4 units / 5 bytes; space; 🎉 = 2 units / 4 bytes; space.
	tests := []struct {
		units int
		want  int
	}{
		{units: 0, want: 0},
		{units: 4, want: 5},
		{units: 5, want: 6},
		{units: 7, want: 10},
		{units: 8, want: 11},
		{units: 6, want: 10},
		{units: 14, want: len(text)},
		{units: 15, want: len(text) + 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utf16ToByteOffset(text, tt.units), "units=%d", tt.units)
	}
	assert.Equal(t, "at 5pm", text[utf16ToByteOffset(text, 8):])
}
