// Package syntax builds temporal spans from part-of-speech tokens. Tokens
// carry no usable offsets, so each expression is anchored back into the
// text by searching for its tokens in order.
package syntax

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"maya-nlp/internal/nlp"
	"maya-nlp/internal/nlp/lexicon"
	"maya-nlp/internal/signal"
)

const (
	lookAhead = 4
	tagNumber = "NUM"
)

var numberRe = regexp.MustCompile(`^\d+(?:[:.]\d+)?(?:am|pm)?$`)

var connectors = map[string]bool{"at": true, "in": true, ":": true}

type Token struct {
	Text string
	Tag  string
}

// Tagger is a part-of-speech tagger that can also recognize entities.
type Tagger interface {
	Tokens(ctx context.Context, text string) ([]Token, error)
	Entities(ctx context.Context, text string) ([]signal.NamedEntity, error)
}

type Provider struct {
	name    string
	tagger  Tagger
	timeout time.Duration
}

func New(name string, tagger Tagger, timeout time.Duration) *Provider {
	return &Provider{name: name, tagger: tagger, timeout: timeout}
}

func (p *Provider) Name() string { return p.name }

// Spans tags text and grows a window around every temporal trigger token.
func (p *Provider) Spans(ctx context.Context, text string) ([]signal.RawSpan, error) {
	ctx, cancel := p.bound(ctx)
	defer cancel()

	tokens, err := p.tagger.Tokens(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", nlp.ErrBackendUnavailable, err)
	}
	return spansFromTokens(text, tokens), nil
}

// Entities returns the recognizer's named entities.
func (p *Provider) Entities(ctx context.Context, text string) ([]signal.NamedEntity, error) {
	ctx, cancel := p.bound(ctx)
	defer cancel()

	ents, err := p.tagger.Entities(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", nlp.ErrBackendUnavailable, err)
	}
	return ents, nil
}

func (p *Provider) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout > 0 {
		return context.WithTimeout(ctx, p.timeout)
	}
	return context.WithCancel(ctx)
}

func spansFromTokens(text string, tokens []Token) []signal.RawSpan {
	var spans []signal.RawSpan
	cursor := 0

	for i := 0; i < len(tokens); {
		if !isTrigger(tokens[i]) {
			i++
			continue
		}

		// Look behind for "in", and for "for"/"at" only in front of that "in".
		start := i
		if start > 0 && lower(tokens[start-1].Text) == "in" {
			start--
			if start > 0 && isPreposition(tokens[start-1].Text, "for", "at") {
				start--
			}
		}

		end := i + 1
		for end < len(tokens) && end-i <= lookAhead && isContinuation(tokens[end]) {
			end++
		}
		for end-1 > i && connectors[lower(tokens[end-1].Text)] {
			end--
		}

		window := tokens[start:end]
		i = end

		loc := anchor(text[cursor:], window)
		if loc == nil {
			continue
		}
		span := signal.RawSpan{Start: cursor + loc[0], End: cursor + loc[1], Dim: signal.DimTime}
		if isDurationWindow(coreTokens(window)) {
			span.Dim = signal.DimDuration
			span.Value.Type = signal.DimDuration
		}
		spans = append(spans, span)
		cursor = span.End
	}
	return spans
}

// anchor finds the tokens, separated by optional whitespace, in text.
func anchor(text string, window []Token) []int {
	parts := make([]string, 0, len(window))
	for _, t := range window {
		if s := strings.TrimSpace(t.Text); s != "" {
			parts = append(parts, regexp.QuoteMeta(s))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	re, err := regexp.Compile(`(?i)` + strings.Join(parts, `\s*`))
	if err != nil {
		return nil
	}
	return re.FindStringIndex(text)
}

// coreTokens drops leading prepositions from a window.
func coreTokens(window []Token) []Token {
	for len(window) > 0 && isPreposition(window[0].Text, "in", "for", "at") {
		window = window[1:]
	}
	return window
}

// isDurationWindow reports number/unit sequences like "2 hours and 30 minutes".
func isDurationWindow(window []Token) bool {
	var sawNumber, sawUnit bool
	for _, t := range window {
		switch {
		case isNumber(t):
			sawNumber = true
		case lexicon.IsTimeUnit(t.Text):
			sawUnit = true
		case lower(t.Text) == "and":
		default:
			return false
		}
	}
	return sawNumber && sawUnit
}

func isTrigger(t Token) bool {
	return isNumber(t) || lexicon.IsTimeUnit(t.Text) || lexicon.IsDayPart(t.Text) || lexicon.IsWeekday(t.Text)
}

func isContinuation(t Token) bool {
	return isTrigger(t) || connectors[lower(t.Text)]
}

func isNumber(t Token) bool {
	return t.Tag == tagNumber || numberRe.MatchString(lower(t.Text))
}

func isPreposition(word string, set ...string) bool {
	w := lower(word)
	for _, s := range set {
		if w == s {
			return true
		}
	}
	return false
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
