package duckling

import (
	"context"
	"time"
)

// IDuckling is the Duckling structured parsing API.
// Implementations are safe for concurrent use.
type IDuckling interface {
	Parse(ctx context.Context, text string, reftime time.Time) ([]Entity, error)
	Raw(ctx context.Context, text string) ([]byte, error)
}
