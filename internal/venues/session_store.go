package venues

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"venuebuilder/internal/seating"
	"venuebuilder/internal/shared/constants"
	"venuebuilder/pkg/cache"
)

// SessionStore keeps editing sessions between requests. Get returns
// ErrSessionNotFound for unknown or expired sessions.
type SessionStore interface {
	Get(ctx context.Context, id string) (*seating.Session, error)
	Put(ctx context.Context, session *seating.Session) error
	Delete(ctx context.Context, id string) error
}

// NewSessionStore picks Redis when a client is configured and falls back to
// process memory otherwise.
func NewSessionStore(cacheService cache.Service, ttl time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = constants.TTL_EDITING_SESSION
	}
	if cacheService == nil {
		return NewMemorySessionStore(ttl)
	}
	return &redisSessionStore{cache: cacheService, ttl: ttl}
}

type redisSessionStore struct {
	cache cache.Service
	ttl   time.Duration
}

func (r *redisSessionStore) Get(ctx context.Context, id string) (*seating.Session, error) {
	var session seating.Session
	if err := r.cache.Get(ctx, constants.BuildSessionKey(id), &session); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &session, nil
}

// Put refreshes the TTL, so an active session never expires mid-edit.
func (r *redisSessionStore) Put(ctx context.Context, session *seating.Session) error {
	return r.cache.Set(ctx, constants.BuildSessionKey(session.ID), session, r.ttl)
}

func (r *redisSessionStore) Delete(ctx context.Context, id string) error {
	key := constants.BuildSessionKey(id)
	if !r.cache.Exists(ctx, key) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return r.cache.Delete(ctx, key)
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// memorySessionStore serialises sessions like the Redis store does, so a
// caller can never share tree pointers with a stored session.
type memorySessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) SessionStore {
	return &memorySessionStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *memorySessionStore) Get(_ context.Context, id string) (*seating.Session, error) {
	m.mu.Lock()
	entry, ok := m.entries[id]
	if ok && m.now().After(entry.expiresAt) {
		delete(m.entries, id)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	var session seating.Session
	if err := json.Unmarshal(entry.data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (m *memorySessionStore) Put(_ context.Context, session *seating.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[session.ID] = memoryEntry{data: data, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *memorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.entries, id)
	return nil
}
