package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// SessionStore keeps issued tokens keyed by user, expiring with the token.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) StoreToken(ctx context.Context, userID int, token string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(userID), token, ttl).Err()
}

func sessionKey(userID int) string {
	return "session:" + strconv.Itoa(userID)
}
