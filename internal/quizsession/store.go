package quizsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
)

// DefaultTTL bounds how long an untouched session is kept.
const DefaultTTL = 2 * time.Hour

// Store keeps sessions between requests. Get returns apperr.ErrNotFound for
// unknown or expired ids.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryStore keeps sessions in process. Suitable for a single API
// instance and for tests.
func NewMemoryStore(ttl time.Duration) Store {
	return newMemoryStore(ttl, time.Now)
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryStore{ttl: ttl, now: now, entries: make(map[string]memoryEntry)}
}

func (m *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, apperr.ErrNotFound)
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.entries, id)
		return nil, fmt.Errorf("session %s expired: %w", id, apperr.ErrNotFound)
	}
	s := e.session
	return &s, nil
}

func (m *memoryStore) Put(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[s.ID] = memoryEntry{session: *s, expiresAt: m.now().Add(m.ttl)}
	m.sweep()
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)
	return nil
}

// sweep drops expired entries. Called with mu held.
func (m *memoryStore) sweep() {
	now := m.now()
	for id, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, id)
		}
	}
}

const redisKeyPrefix = "quizsession:"

type redisStore struct {
	rdb goredis.UniversalClient
	ttl time.Duration
}

// NewRedisStore shares sessions between API instances. Every Put refreshes
// the key's expiry.
func NewRedisStore(rdb goredis.UniversalClient, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisStore{rdb: rdb, ttl: ttl}
}

func (r *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := r.rdb.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("session %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %v: %w", err, apperr.ErrStore)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %v: %w", id, err, apperr.ErrStore)
	}
	return &s, nil
}

func (r *redisStore) Put(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %v: %w", s.ID, err, apperr.ErrStore)
	}
	if err := r.rdb.Set(ctx, redisKeyPrefix+s.ID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %v: %w", err, apperr.ErrStore)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis del: %v: %w", err, apperr.ErrStore)
	}
	return nil
}

// NewRedisClient connects and pings so a bad address fails at startup.
func NewRedisClient(ctx context.Context, addr, password string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
