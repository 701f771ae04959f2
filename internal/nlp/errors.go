package nlp

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("Text cannot be empty")
	ErrBackendUnavailable = errors.New("nlp backend unavailable")
	ErrExtractionFailed   = errors.New("entity extraction failed")
	ErrUnknownBackend     = errors.New("unknown nlp backend")
	ErrNoBackends         = errors.New("no nlp backends configured")
)

// AnalysisError ties a failure kind (one of the sentinels above) to the
// backend that produced it and the underlying cause.
type AnalysisError struct {
	Kind    error
	Backend string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("backend %s: %v", e.Backend, e.Kind)
	}
	if errors.Is(e.Err, e.Kind) {
		return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("backend %s: %v: %v", e.Backend, e.Kind, e.Err)
}

// Unwrap lets errors.Is match both the kind and the cause.
func (e *AnalysisError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
