package nlp

import "maya-nlp/internal/model"

// Backend names accepted in config and in requests.
const (
	BackendPattern  = "pattern"
	BackendDuckling = "duckling"
	BackendGoogle   = "google"
	BackendProse    = "prose"
)

// KnownBackends lists every backend name in default preference order.
var KnownBackends = []string{BackendPattern, BackendDuckling, BackendGoogle, BackendProse}

// IsKnownBackend reports whether name is a supported backend.
func IsKnownBackend(name string) bool {
	for _, b := range KnownBackends {
		if b == name {
			return true
		}
	}
	return false
}

type AnalyzeInput struct {
	Text string
	// Backend forces a backend first; empty means the configured default.
	Backend string
}

type AnalyzeOutput struct {
	Entities []model.EntityInfo
	// Backend is the backend that produced Entities.
	Backend string
}
