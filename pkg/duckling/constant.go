package duckling

import "time"

const (
	DefaultBaseURL       = "http://localhost:8000"
	DefaultParseEndpoint = "/parse"
	DefaultLocale        = "en_US"
	DefaultTimeout       = 5 * time.Second
)

// DefaultDims are the dimensions requested on every parse.
var DefaultDims = []string{"time", "duration"}
