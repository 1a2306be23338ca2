package session

import (
	"context" // Context for Redis operations
	"time"    // TTL durations

	"folio_fetch/internal/utils" // Redis cache helpers

	"github.com/google/uuid"       // Session ids
	"github.com/redis/go-redis/v9" // Redis client
)

// sessionTTL matches the auth token lifetime so state outlives neither.
const sessionTTL = 24 * time.Hour

// Store persists one Coordinator per session id in Redis. Each login gets a
// fresh id; logout deletes the key.
type Store struct {
	rdb *redis.Client
}

// NewStore creates a Store over the given Redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create stores a fresh coordinator and returns its new session id.
func (s *Store) Create(ctx context.Context, c *Coordinator) (string, error) {
	id := uuid.NewString()
	if err := s.Save(ctx, id, c); err != nil {
		return "", err
	}
	return id, nil
}

// Get loads the coordinator for a session id. A missing or expired session
// yields a fresh Browsing coordinator rather than an error.
func (s *Store) Get(ctx context.Context, id string) (*Coordinator, error) {
	var c Coordinator
	found, err := utils.GetCache(ctx, s.rdb, sessionKey(id), &c)
	if err != nil {
		return nil, err
	}
	if !found {
		return NewCoordinator(), nil
	}
	return &c, nil
}

// Save writes the coordinator back under its session id, refreshing the TTL.
func (s *Store) Save(ctx context.Context, id string, c *Coordinator) error {
	return utils.SetCache(ctx, s.rdb, sessionKey(id), c, sessionTTL)
}

// Delete removes the session at logout.
func (s *Store) Delete(ctx context.Context, id string) error {
	return utils.DeleteCache(ctx, s.rdb, sessionKey(id))
}
