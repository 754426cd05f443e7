// File: services/assistant/stateStore.go
package assistant

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tripmate/models"

	"github.com/go-redis/redis/v8"
)

const bookingStatePrefix = "chat:state:"

// StateStore holds the per-session booking form snapshot that the resolver
// reads. Entries are scoped to the page session via TTL; this is transient
// context, not a persistence layer.
type StateStore interface {
	Get(ctx context.Context, sessionID string) (models.BookingState, error)
	Set(ctx context.Context, sessionID string, state models.BookingState) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisStateStore keeps booking snapshots in Redis so the form UI and the
// assistant see the same state regardless of which instance serves a request.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, ttl: ttl}
}

func (s *RedisStateStore) Get(ctx context.Context, sessionID string) (models.BookingState, error) {
	data, err := s.client.Get(ctx, bookingStatePrefix+sessionID).Result()
	if err == redis.Nil {
		// No edits yet: an all-unset form.
		return models.BookingState{}, nil
	}
	if err != nil {
		return models.BookingState{}, err
	}
	var state models.BookingState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return models.BookingState{}, err
	}
	return state, nil
}

func (s *RedisStateStore) Set(ctx context.Context, sessionID string, state models.BookingState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, bookingStatePrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisStateStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, bookingStatePrefix+sessionID).Err()
}

// MemoryStateStore is a map-backed StateStore for tests and redis-less runs.
type MemoryStateStore struct {
	mu     sync.RWMutex
	states map[string]models.BookingState
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string]models.BookingState)}
}

func (s *MemoryStateStore) Get(ctx context.Context, sessionID string) (models.BookingState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[sessionID], nil
}

func (s *MemoryStateStore) Set(ctx context.Context, sessionID string, state models.BookingState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = state
	return nil
}

func (s *MemoryStateStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}
