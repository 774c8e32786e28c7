package repository

import (
	"context"
	"time"
)

// SessionTokenRepository tracks which issued session tokens are still live.
type SessionTokenRepository interface {
	Save(ctx context.Context, sessionID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID, tokenID string) (bool, error)
	Revoke(ctx context.Context, sessionID, tokenID string) error
}
