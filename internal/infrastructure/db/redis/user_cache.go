package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/userportal/registration-system/internal/core/domain"
)

const (
	userListKey = "cache:users:list"
	userListTTL = 30 * time.Second
)

// cachedUser mirrors the listing fields only. Password digests never enter
// the cache.
type cachedUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListCache keeps the admin user listing in Redis for a short TTL so
// repeated dashboard refreshes do not hit the store every time.
type UserListCache struct {
	client *redis.Client
}

// NewUserListCache wraps the given Redis client.
func NewUserListCache(client *redis.Client) *UserListCache {
	return &UserListCache{client: client}
}

// Get returns the cached listing and whether the key was present.
func (c *UserListCache) Get(ctx context.Context) ([]domain.User, bool, error) {
	raw, err := c.client.Get(ctx, userListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var cached []cachedUser
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}

	users := make([]domain.User, 0, len(cached))
	for _, cu := range cached {
		users = append(users, domain.User{
			ID:        cu.ID,
			Username:  cu.Username,
			Email:     cu.Email,
			CreatedAt: cu.CreatedAt,
			UpdatedAt: cu.UpdatedAt,
		})
	}
	return users, true, nil
}

// Set stores the listing, overwriting any previous value.
func (c *UserListCache) Set(ctx context.Context, users []domain.User) error {
	cached := make([]cachedUser, 0, len(users))
	for _, u := range users {
		cached = append(cached, cachedUser{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, userListKey, raw, userListTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing, typically after a registration.
func (c *UserListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, userListKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
