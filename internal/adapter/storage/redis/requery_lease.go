package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// RequeryLease implements ports.RequeryLease using Redis SET NX, so only one
// worker at a time holds the `requery:{id}` lease for a given transaction.
type RequeryLease struct {
	client *goredis.Client
	prefix string
}

// NewRequeryLease creates a new Redis-backed requery lease.
func NewRequeryLease(client *goredis.Client) *RequeryLease {
	return &RequeryLease{
		client: client,
		prefix: "requery:",
	}
}

func (l *RequeryLease) key(transactionID uuid.UUID) string {
	return l.prefix + transactionID.String()
}

// Acquire returns true if the lease was obtained, false if another worker
// already holds it.
func (l *RequeryLease) Acquire(ctx context.Context, transactionID uuid.UUID, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(transactionID), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis requery lease acquire: %w", err)
	}
	return ok, nil
}

// Release drops the lease early, e.g. once a requery attempt completes.
func (l *RequeryLease) Release(ctx context.Context, transactionID uuid.UUID) error {
	if err := l.client.Del(ctx, l.key(transactionID)).Err(); err != nil {
		return fmt.Errorf("redis requery lease release: %w", err)
	}
	return nil
}
