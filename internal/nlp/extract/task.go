package extract

import (
	"sort"
	"strings"

	"maya-nlp/internal/nlp/lexicon"
	"maya-nlp/internal/signal"
)

// TaskFunc isolates the task phrase of a command. ok is false when no task
// is present.
type TaskFunc func(text string, spans []signal.RawSpan) (task string, ok bool)

var taskMarkers = []string{"to", "and", "."}

// TaskBySpans removes every span from text and returns what follows the last
// " to ". A "reply to" phrase split by that search is restored.
func TaskBySpans(text string, spans []signal.RawSpan) (string, bool) {
	remaining := removeSpans(text, spans)

	lower := asciiLower(remaining)
	idx := strings.LastIndex(lower, " to ")
	if idx < 0 {
		return "", false
	}

	task := strings.TrimRight(strings.TrimSpace(remaining[idx+len(" to "):]), ".!?")
	task = strings.TrimSpace(task)
	if task == "" {
		return "", false
	}

	if strings.HasPrefix(asciiLower(task), "reply to ") {
		return task, true
	}
	if strings.Contains(lower[:idx], "reply") {
		task = "reply to " + task
	}
	return task, true
}

// TaskByMarkers returns the text after the first standalone marker ("to",
// then "and", then "."). Without a marker it falls back to the text after
// the earliest time-unit word.
func TaskByMarkers(text string, _ []signal.RawSpan) (string, bool) {
	lower := asciiLower(text)

	start := -1
	for _, m := range taskMarkers {
		if at := indexStandalone(lower, m); at >= 0 {
			start = at + len(m)
			break
		}
	}

	if start < 0 {
		best, bestLen := -1, 0
		for _, u := range lexicon.TimeUnits() {
			at := indexStandalone(lower, u)
			if at < 0 {
				continue
			}
			if best < 0 || at < best || (at == best && len(u) > bestLen) {
				best, bestLen = at, len(u)
			}
		}
		if best < 0 {
			return "", false
		}
		start = best + bestLen
	}

	task := strings.TrimLeft(text[start:], " \t\r\n.,")
	task = strings.TrimSpace(task)
	if task == "" {
		return "", false
	}
	return task, true
}

// removeSpans deletes the union of spans from text, highest offset first.
func removeSpans(text string, spans []signal.RawSpan) string {
	ranges := make([][2]int, 0, len(spans))
	for _, s := range spans {
		if s.Valid(len(text)) {
			ranges = append(ranges, [2]int{s.Start, s.End})
		}
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })

	merged := make([][2]int, 0, len(ranges))
	for _, r := range ranges {
		if n := len(merged); n > 0 && r[0] <= merged[n-1][1] {
			merged[n-1][1] = max(merged[n-1][1], r[1])
			continue
		}
		merged = append(merged, r)
	}

	out := text
	for i := len(merged) - 1; i >= 0; i-- {
		out = out[:merged[i][0]] + out[merged[i][1]:]
	}
	return out
}

// indexStandalone finds word in s where it is not part of a larger word.
func indexStandalone(s, word string) int {
	for from := 0; from <= len(s)-len(word); {
		at := strings.Index(s[from:], word)
		if at < 0 {
			return -1
		}
		at += from
		end := at + len(word)
		leftOK := at == 0 || !isAlnum(word[0]) || !isAlnum(s[at-1])
		rightOK := end == len(s) || !isAlnum(word[len(word)-1]) || !isAlnum(s[end])
		if leftOK && rightOK {
			return at
		}
		from = at + 1
	}
	return -1
}

// asciiLower lower-cases ASCII letters only, so byte offsets found in the
// result are valid in s.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
