package model

// EntityType classifies an extracted entity. Generic NER kinds reported by a
// backend (PERSON, LOCATION, ...) are carried through as their own string.
type EntityType string

const (
	EntityTask     EntityType = "TASK"
	EntityTemporal EntityType = "TEMPORAL"
	EntityDuration EntityType = "DURATION"
)

// Default saliences for entities built by the extraction heuristics.
const (
	SalienceTask     float32 = 0.8
	SalienceTemporal float32 = 0.7
)

// EntityInfo is one extracted entity. It is a comparable value: two entities
// are the same when name, type and salience all match.
type EntityInfo struct {
	Name     string     `json:"name"`
	Type     EntityType `json:"type"`
	Salience float32    `json:"salience"`
}

// Command is the classification of a single input text.
type Command struct {
	IsCommand  bool
	IsTimer    bool
	IsReminder bool
}
