package extract

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"maya-nlp/internal/signal"
)

func TestTaskBySpans(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		spans  []signal.RawSpan
		want   string
		wantOK bool
	}{
		{
			name:   "last to wins",
			text:   "Remind me tomorrow to go to the gym.",
			spans:  []signal.RawSpan{{Start: 10, End: 18}},
			want:   "the gym",
			wantOK: true,
		},
		{
			name:   "reply to restored",
			text:   "Set a timer for 25 minutes to reply to emails",
			spans:  []signal.RawSpan{{Start: 15, End: 25}},
			want:   "reply to emails",
			wantOK: true,
		},
		{
			name:   "trailing punctuation stripped",
			text:   "Remind me to call mom!",
			want:   "call mom",
			wantOK: true,
		},
		{
			name:   "overlapping spans removed once",
			text:   "Remind me tomorrow at 5pm to water plants",
			spans:  []signal.RawSpan{{Start: 10, End: 25}, {Start: 19, End: 25}},
			want:   "water plants",
			wantOK: true,
		},
		{
			name:  "no marker",
			text:  "Set a timer for 10 minutes",
			spans: []signal.RawSpan{{Start: 16, End: 26}},
		},
		{
			name: "nothing after marker",
			text: "Remind me to ",
		},
		{
			name:   "invalid utf-8 before marker",
			text:   "Set a timer \xff\xfe for 3 minutes to go",
			want:   "go",
			wantOK: true,
		},
		{
			name:   "rune that shrinks when lowered",
			text:   "Remind me \u212A\u212A\u212A\u212A to call mom",
			want:   "call mom",
			wantOK: true,
		},
		{
			name:   "rune that grows when lowered",
			text:   "Remind me \u023A\u023A\u023A\u023A to call mom",
			want:   "call mom",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TaskBySpans(tt.text, tt.spans)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskByMarkers(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "to marker",
			text:   "Remind me in 1 hour to check the project status",
			want:   "check the project status",
			wantOK: true,
		},
		{
			name:   "to inside a word is skipped",
			text:   "Set alarm tomorrow to stretch",
			want:   "stretch",
			wantOK: true,
		},
		{
			name:   "and marker when no to",
			text:   "Set alarm at 7am and wake up Sam",
			want:   "wake up Sam",
			wantOK: true,
		},
		{
			name:   "period marker",
			text:   "Create alarm at 6. Morning run",
			want:   "Morning run",
			wantOK: true,
		},
		{
			name:   "time unit fallback prefers longer word",
			text:   "Set a timer 20 minutes stretch break",
			want:   "stretch break",
			wantOK: true,
		},
		{
			name: "nothing found",
			text: "Set an alarm",
		},
		{
			name: "marker at end",
			text: "Remind me to",
		},
		{
			name:   "rune that grows when lowered",
			text:   "Remind me \u023A\u023A\u023A\u023A and call mom",
			want:   "call mom",
			wantOK: true,
		},
		{
			name:   "rune that shrinks when lowered",
			text:   "Set alarm \u212A\u212A\u212A\u212A to call mom",
			want:   "call mom",
			wantOK: true,
		},
		{
			name:   "non-ascii task kept intact",
			text:   "Remind me to appeler Zoé",
			want:   "appeler Zoé",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TaskByMarkers(tt.text, nil)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskNonASCIIKeepsValidUTF8(t *testing.T) {
	text := "Remind me \u023A\u212A to écrire à Zoé"
	for name, fn := range map[string]TaskFunc{"spans": TaskBySpans, "markers": TaskByMarkers} {
		t.Run(name, func(t *testing.T) {
			got, ok := fn(text, nil)
			assert.True(t, ok)
			assert.Equal(t, "écrire à Zoé", got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestASCIILowerPreservesLength(t *testing.T) {
	for _, s := range []string{"ABC to", "\u212A\u023A TO", "\xff\xfeTo"} {
		assert.Len(t, asciiLower(s), len(s))
	}
	assert.Equal(t, "set \u212A to", asciiLower("SET \u212A TO"))
}

func TestIndexStandalone(t *testing.T) {
	assert.Equal(t, -1, indexStandalone("tomorrow", "to"))
	assert.Equal(t, 9, indexStandalone("tomorrow to", "to"))
	assert.Equal(t, 4, indexStandalone("call. now", "."))
}
