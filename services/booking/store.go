// File: services/booking/store.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"glossify/config"
	"glossify/models"
	"glossify/utils"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when no checkpoint exists for a session ID.
var ErrSessionNotFound = errors.New("booking: session not found or expired")

// SessionSnapshot is the persisted form of a session. Durable booking
// records live behind the external API; this is only the in-flight wizard
// state, checkpointed so an interrupted flow can be resumed.
type SessionSnapshot struct {
	ID          string                   `json:"id"`
	CreatedAt   time.Time                `json:"createdAt"`
	CurrentStep int                      `json:"currentStep"`
	Form        *models.BookingFormData  `json:"form"`
	Pricing     *models.PricingBreakdown `json:"pricing,omitempty"`
	SavedAt     time.Time                `json:"savedAt"`
}

// SessionStore persists session snapshots.
type SessionStore interface {
	Save(ctx context.Context, snap *SessionSnapshot) error
	Load(ctx context.Context, id string) (*SessionSnapshot, error)
	Drop(ctx context.Context, id string) error
}

// RedisSessionStore keeps snapshots as JSON values with a TTL, so abandoned
// sessions expire on their own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// NewDefaultRedisSessionStore binds the shared session cache client with the
// configured TTL.
func NewDefaultRedisSessionStore() *RedisSessionStore {
	return NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
}

func (r *RedisSessionStore) Save(ctx context.Context, snap *SessionSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, buildSessionKey(snap.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Load(ctx context.Context, id string) (*SessionSnapshot, error) {
	data, err := r.client.Get(ctx, buildSessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var snap SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &snap, nil
}

func (r *RedisSessionStore) Drop(ctx context.Context, id string) error {
	return r.client.Del(ctx, buildSessionKey(id)).Err()
}

func buildSessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// MemorySessionStore backs tests and embedded use.
type MemorySessionStore struct {
	mu    sync.Mutex
	snaps map[string]*SessionSnapshot
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{snaps: make(map[string]*SessionSnapshot)}
}

func (m *MemorySessionStore) Save(_ context.Context, snap *SessionSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[snap.ID] = snap
	return nil
}

func (m *MemorySessionStore) Load(_ context.Context, id string) (*SessionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snaps[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return snap, nil
}

func (m *MemorySessionStore) Drop(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snaps, id)
	return nil
}
