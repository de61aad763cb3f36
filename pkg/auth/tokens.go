package auth

import (
	"context"
	"time"
)

// TokenGenerator issues signed admin session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, admin Admin) (string, error)
	TTL() time.Duration
}
