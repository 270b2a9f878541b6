package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// claimTTL bounds how long a crashed request can hold a creation claim.
const claimTTL = 30 * time.Second

// CreateGuard implements ports.CreateGuard with a Redis SetNX claim.
// Key format: create:<entity>:<natural key>
type CreateGuard struct {
	client *redis.Client
}

// NewCreateGuard creates a CreateGuard wrapping the given Redis client.
func NewCreateGuard(client *redis.Client) *CreateGuard {
	return &CreateGuard{client: client}
}

// Claim takes the creation claim for key. Returns false when another
// in-flight request already holds it.
func (g *CreateGuard) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(key), "1", claimTTL).Result()
	if err != nil {
		return false, fmt.Errorf("create claim: %w", err)
	}
	return ok, nil
}

// Release frees the claim once the insert has completed or failed.
func (g *CreateGuard) Release(ctx context.Context, key string) {
	g.client.Del(ctx, g.key(key))
}

func (g *CreateGuard) key(key string) string {
	return "create:" + key
}
