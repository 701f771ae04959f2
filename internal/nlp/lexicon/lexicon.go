// Package lexicon holds the fixed word sets used to classify scheduling
// commands and to recognise time vocabulary.
package lexicon

import (
	"strings"

	"maya-nlp/internal/model"
)

var commandWords = []string{"timer", "remind", "reminder", "alarm", "set", "create"}

var timeUnits = map[string]struct{}{
	"second": {}, "seconds": {},
	"minute": {}, "minutes": {},
	"hour": {}, "hours": {},
	"day": {}, "days": {},
	"week": {}, "weeks": {},
	"month": {}, "months": {},
	"year": {}, "years": {},
}

var dayParts = map[string]struct{}{
	"today": {}, "tomorrow": {}, "yesterday": {}, "tonight": {},
	"morning": {}, "afternoon": {}, "evening": {}, "night": {},
	"noon": {}, "midnight": {}, "am": {}, "pm": {},
}

var weekdays = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

// CommandWords returns a copy of the command vocabulary.
func CommandWords() []string {
	out := make([]string, len(commandWords))
	copy(out, commandWords)
	return out
}

// TimeUnits returns the time-unit words in singular and plural form.
func TimeUnits() []string {
	out := make([]string, 0, len(timeUnits))
	for u := range timeUnits {
		out = append(out, u)
	}
	return out
}

// IsCommandWord reports whether word (any case) is one of the command words.
func IsCommandWord(word string) bool {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, c := range commandWords {
		if w == c {
			return true
		}
	}
	return false
}

// IsTimeUnit reports whether word is a time unit, singular or plural.
func IsTimeUnit(word string) bool {
	_, ok := timeUnits[strings.ToLower(word)]
	return ok
}

// IsDayPart reports whether word names a part of the day or a relative day.
func IsDayPart(word string) bool {
	_, ok := dayParts[strings.ToLower(word)]
	return ok
}

// IsWeekday reports whether word is an English weekday name.
func IsWeekday(word string) bool {
	_, ok := weekdays[strings.ToLower(word)]
	return ok
}

// IsCommand matches command words as substrings of the lower-cased text, so
// "settings" counts as a command.
func IsCommand(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range commandWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// IsTimerCommand reports whether the text asks for a timer.
func IsTimerCommand(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "set a timer") || strings.Contains(lower, "set timer")
}

// IsReminderCommand reports whether the text asks for a reminder.
func IsReminderCommand(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "remind") || strings.Contains(lower, "reminder")
}

// Classify derives the command flags for text.
func Classify(text string) model.Command {
	return model.Command{
		IsCommand:  IsCommand(text),
		IsTimer:    IsTimerCommand(text),
		IsReminder: IsReminderCommand(text),
	}
}
