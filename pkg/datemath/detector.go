package datemath

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Detector finds date and time phrases in English text. It only locates
// phrases; it never resolves them to timestamps.
type Detector struct {
	w *when.Parser
}

// NewDetector creates a Detector with the English and common rule sets.
func NewDetector() *Detector {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Detector{w: w}
}

// Detect returns every mention in text in document order. base anchors
// relative phrases for the underlying parser.
func (d *Detector) Detect(text string, base time.Time) ([]Mention, error) {
	var mentions []Mention

	for offset := 0; offset < len(text); {
		r, err := d.w.Parse(text[offset:], base)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", text, err)
		}
		if r == nil || r.Text == "" {
			break
		}

		start := offset + r.Index
		end := start + len(r.Text)
		offset = end

		m, ok := trimMention(text, start, end)
		if ok {
			mentions = append(mentions, m)
		}
	}

	return mentions, nil
}

// trimMention drops surrounding spaces and punctuation picked up by the
// rule patterns.
func trimMention(text string, start, end int) (Mention, bool) {
	if start < 0 || end > len(text) || start >= end {
		return Mention{}, false
	}
	s := text[start:end]
	left := strings.TrimLeftFunc(s, isTrimmable)
	start += len(s) - len(left)
	trimmed := strings.TrimRightFunc(left, isTrimmable)
	if trimmed == "" {
		return Mention{}, false
	}
	return Mention{Start: start, End: start + len(trimmed), Text: trimmed}, true
}

func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == ';' || r == '!' || r == '?' || r == '(' || r == ')'
}
