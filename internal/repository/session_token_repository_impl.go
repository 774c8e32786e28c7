package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainRepo "health-assessment-service/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

func sessionTokenKey(sessionID, tokenID string) string {
	return fmt.Sprintf("session_token:%s:%s", sessionID, tokenID)
}

type redisSessionTokenRepository struct {
	client *redis.Client
}

// NewRedisSessionTokenRepository keeps one TTL key per live token.
func NewRedisSessionTokenRepository(client *redis.Client) domainRepo.SessionTokenRepository {
	return &redisSessionTokenRepository{client: client}
}

func (r *redisSessionTokenRepository) Save(ctx context.Context, sessionID, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionTokenKey(sessionID, tokenID), "1", ttl).Err()
}

func (r *redisSessionTokenRepository) Exists(ctx context.Context, sessionID, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionTokenKey(sessionID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redisSessionTokenRepository) Revoke(ctx context.Context, sessionID, tokenID string) error {
	return r.client.Del(ctx, sessionTokenKey(sessionID, tokenID)).Err()
}

type memorySessionTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]time.Time // key -> expiry
	now    func() time.Time
}

// NewMemorySessionTokenRepository is the single-process registry used when
// Redis is disabled.
func NewMemorySessionTokenRepository() domainRepo.SessionTokenRepository {
	return &memorySessionTokenRepository{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (r *memorySessionTokenRepository) Save(ctx context.Context, sessionID, tokenID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, exp := range r.tokens {
		if !exp.After(now) {
			delete(r.tokens, key)
		}
	}
	r.tokens[sessionTokenKey(sessionID, tokenID)] = now.Add(ttl)
	return nil
}

func (r *memorySessionTokenRepository) Exists(ctx context.Context, sessionID, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.tokens[sessionTokenKey(sessionID, tokenID)]
	return ok && exp.After(r.now()), nil
}

func (r *memorySessionTokenRepository) Revoke(ctx context.Context, sessionID, tokenID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, sessionTokenKey(sessionID, tokenID))
	return nil
}
