package middleware

import (
	"maya-nlp/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the shared middleware set. perMin <= 0 disables rate limiting.
func New(l log.Logger, perMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(perMin),
	}
}
