// Package extract turns raw backend spans into normalized temporal and
// duration expressions, isolates the task phrase and assembles the final
// entity list.
package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"maya-nlp/internal/model"
	"maya-nlp/internal/nlp"
	"maya-nlp/internal/signal"
)

const unitAlt = `(?:seconds?|minutes?|hours?|days?|weeks?|months?|years?)`

var (
	durationRe = regexp.MustCompile(`(?i)^(?:(?:in|for)\s+)?\d+\s*` + unitAlt + `(?:\s+and\s+\d+\s*` + unitAlt + `)*$`)
	unitPairRe = regexp.MustCompile(`(?i)\b(\d+)(\s*)(second|minute|hour|day|week|month|year)(s?)\b`)
	meridiemRe = regexp.MustCompile(`(?i)(?:\d|\b)(?:am|pm|a\.m\.?|p\.m\.?)(?:\W|$)`)
	dateWordRe = regexp.MustCompile(`(?i)\b(?:today|tomorrow|tonight|yesterday|monday|tuesday|wednesday|thursday|friday|saturday|sunday|january|february|march|april|may|june|july|august|september|october|november|december|next|this|last|weekend)\b|\d{1,4}[/-]\d{1,2}(?:[/-]\d{1,4})?`)
)

// Words captured into an expression when they sit right before its span.
var prefixWords = []string{"in", "between", "every"}

// Proximity window for joining a date-only and a time-only expression.
const mergeWindow = 20

// Expression is a normalized temporal or duration mention. Start and End
// locate it in the source text, including any captured prefix word.
type Expression struct {
	Text      string
	Type      model.EntityType
	Start     int
	End       int
	Recurring bool
}

// IsDuration reports whether s reads as a plain duration, optionally led by
// "in" or "for".
func IsDuration(s string) bool {
	return durationRe.MatchString(strings.TrimSpace(s))
}

// Expressions validates spans against text, sorts them by start offset and
// returns one normalized expression per non-blank span.
func Expressions(text string, spans []signal.RawSpan) ([]Expression, error) {
	for _, s := range spans {
		if !s.Valid(len(text)) {
			return nil, fmt.Errorf("%w: span [%d,%d) outside text of length %d",
				nlp.ErrExtractionFailed, s.Start, s.End, len(text))
		}
	}

	sorted := make([]signal.RawSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	exprs := make([]Expression, 0, len(sorted))
	for _, s := range sorted {
		raw := text[s.Start:s.End]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		start := s.Start + strings.Index(raw, trimmed)

		e := Expression{
			Text:      trimmed,
			Type:      model.EntityTemporal,
			Start:     start,
			End:       start + len(trimmed),
			Recurring: s.Recurring(),
		}
		if s.Value.Type == signal.DimDuration || s.Dim == signal.DimDuration || IsDuration(trimmed) {
			e.Type = model.EntityDuration
		}

		exprs = append(exprs, Normalize(text, e))
	}
	return exprs, nil
}

// Normalize applies prefix capture, recurrence marking, the "minute" fix
// and numeral-driven unit pluralization, in that order.
func Normalize(text string, e Expression) Expression {
	lower := strings.ToLower(e.Text)
	if word, at := previousWord(text, e.Start); word != "" {
		for _, p := range prefixWords {
			if word != p || strings.HasPrefix(lower, p+" ") {
				continue
			}
			e.Text = p + " " + e.Text
			e.Start = at
			if p == "every" {
				e.Recurring = true
			}
			break
		}
	}

	if e.Recurring {
		if !strings.HasPrefix(strings.ToLower(e.Text), "every") {
			e.Text = "every " + e.Text
		}
		// Remote parsers drop the meridiem on recurring times ("at 3").
		if last := e.Text[len(e.Text)-1]; last >= '0' && last <= '9' {
			e.Text += "pm"
		}
	}

	if e.Type == model.EntityDuration && strings.HasSuffix(strings.ToLower(e.Text), "minute") {
		e.Text += "s"
	}

	e.Text = pluralizeUnits(e.Text)
	return e
}

// MergeRanges joins consecutive expressions separated only by "and", and
// date-only expressions with a nearby time-only expression. Merges chain
// left to right. An expression fully inside the previous one is dropped.
func MergeRanges(text string, exprs []Expression) []Expression {
	out := make([]Expression, 0, len(exprs))
	for _, e := range exprs {
		if n := len(out); n > 0 {
			prev := out[n-1]
			if e.Start >= prev.Start && e.End <= prev.End {
				continue
			}
			if merged, ok := mergePair(text, prev, e); ok {
				out[n-1] = merged
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// Relabel applies command-specific relabeling: a reminder's relative offset
// ("in 2 hours") is a duration even when the backend reported a time.
func Relabel(cmd model.Command, exprs []Expression) []Expression {
	out := make([]Expression, len(exprs))
	copy(out, exprs)
	if !cmd.IsReminder {
		return out
	}
	for i := range out {
		if out[i].Type == model.EntityTemporal && IsDuration(out[i].Text) {
			out[i].Type = model.EntityDuration
		}
	}
	return out
}

func mergePair(text string, a, b Expression) (Expression, bool) {
	if b.Start >= a.End && strings.EqualFold(strings.TrimSpace(text[a.End:b.Start]), "and") {
		joined := a.Text + " and " + b.Text
		if strings.HasSuffix(strings.ToLower(a.Text), "between") {
			joined = a.Text + " " + b.Text
		}
		typ := model.EntityTemporal
		if a.Type == model.EntityDuration && b.Type == model.EntityDuration {
			typ = model.EntityDuration
		}
		return Expression{Text: joined, Type: typ, Start: a.Start, End: b.End, Recurring: a.Recurring || b.Recurring}, true
	}

	if b.Start-a.Start > mergeWindow || a.Type != model.EntityTemporal || b.Type != model.EntityTemporal {
		return Expression{}, false
	}

	var date, clock Expression
	switch {
	case isDateOnly(a) && isTimeOnly(b):
		date, clock = a, b
	case isTimeOnly(a) && isDateOnly(b):
		date, clock = b, a
	default:
		return Expression{}, false
	}
	return Expression{
		Text:      date.Text + " " + clock.Text,
		Type:      model.EntityTemporal,
		Start:     a.Start,
		End:       max(a.End, b.End),
		Recurring: a.Recurring || b.Recurring,
	}, true
}

func isTimeOnly(e Expression) bool {
	return meridiemRe.MatchString(e.Text) && !dateWordRe.MatchString(e.Text)
}

func isDateOnly(e Expression) bool {
	return !meridiemRe.MatchString(e.Text) && dateWordRe.MatchString(e.Text)
}

// previousWord returns the lower-cased word that ends right before the
// whitespace preceding offset, and the offset where that word starts.
func previousWord(text string, offset int) (string, int) {
	i := offset
	for i > 0 && isSpace(text[i-1]) {
		i--
	}
	if i == offset {
		return "", offset
	}
	j := i
	for j > 0 && isLetter(text[j-1]) {
		j--
	}
	if j == i {
		return "", offset
	}
	return strings.ToLower(text[j:i]), j
}

func pluralizeUnits(s string) string {
	return unitPairRe.ReplaceAllStringFunc(s, func(m string) string {
		g := unitPairRe.FindStringSubmatch(m)
		n, err := strconv.Atoi(g[1])
		if err != nil {
			return m
		}
		switch {
		case n == 1:
			return g[1] + g[2] + g[3]
		case n > 1:
			return g[1] + g[2] + g[3] + "s"
		default:
			return m
		}
	})
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlnum(b byte) bool {
	return isLetter(b) || (b >= '0' && b <= '9')
}
