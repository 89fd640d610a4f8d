// Package cache holds the write-through user snapshot cache. It is a
// best-effort read accelerator refreshed after user mutations; it is never
// the source of truth and no correctness depends on it.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/tunemesh/tunemesh/model"
)

const (
	// UserSnapshotTTL bounds how stale a cached user document can get if
	// a refresh is lost.
	UserSnapshotTTL = 7200 * time.Second

	keyDelimiter = "__"
)

// UserKey builds the redis key for a user snapshot.
func UserKey(userId string) string {
	return "user" + keyDelimiter + userId
}

// UserCache stores JSON snapshots of user documents in redis.
type UserCache struct {
	inner *redis.Client
}

// NewUserCache connects to the redis instance specified by env and pings it
// once to fail fast on a bad address.
func NewUserCache() (*UserCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
		Password: os.Getenv("REDIS_PASSWD"),
		DB:       0, // use default DB
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &UserCache{inner: client}, nil
}

// RefreshUser overwrites the cached snapshot for the user and resets its
// TTL.
func (c *UserCache) RefreshUser(ctx context.Context, user *model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.inner.Set(ctx, UserKey(user.Id), payload, UserSnapshotTTL).Err()
}

// GetUser returns the cached snapshot for the user id, or nil on a cache
// miss.
func (c *UserCache) GetUser(ctx context.Context, userId string) (*model.User, error) {
	payload, err := c.inner.Get(ctx, UserKey(userId)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
