package duckling

import (
	"encoding/json"
	"strings"
	"time"
)

// Config configures a Duckling client. Zero fields take the defaults.
type Config struct {
	BaseURL       string
	ParseEndpoint string
	Locale        string
	Timeout       time.Duration
}

// Entity is one parse result. Start and End are UTF-16 code-unit offsets
// into the request text, End exclusive.
type Entity struct {
	Body   string `json:"body"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Dim    string `json:"dim"`
	Latent bool   `json:"latent"`
	Value  Value  `json:"value"`
}

type Value struct {
	Type   string          `json:"type"`
	Grain  string          `json:"grain,omitempty"`
	Value  json.RawMessage `json:"value,omitempty"`
	Unit   string          `json:"unit,omitempty"`
	Values []Candidate     `json:"values,omitempty"`
}

// Candidate is one alternative reading of a time value. Recurring
// expressions produce several.
type Candidate struct {
	Type  string          `json:"type,omitempty"`
	Grain string          `json:"grain,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// String returns the candidate value, unquoted when it is a JSON string.
func (c Candidate) String() string {
	var s string
	if err := json.Unmarshal(c.Value, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(c.Value))
}
