// Package submission keeps at most one contact submission in flight per
// client. Leases live in Redis when available and in process memory
// otherwise; every lease expires after its TTL even if never released.
package submission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ErrHeld is returned when the key already has a live lease.
var ErrHeld = errors.New("submission: already in flight")

// Guard hands out exclusive, expiring leases per key.
type Guard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (*Lease, error)
}

// Lease is an acquired key. Release is idempotent and only removes the
// lease if it is still the owner.
type Lease struct {
	key     string
	token   string
	once    sync.Once
	release func(ctx context.Context, key, token string) error
}

func (l *Lease) Key() string { return l.key }

func (l *Lease) Release(ctx context.Context) error {
	var err error
	l.once.Do(func() {
		err = l.release(ctx, l.key, l.token)
	})
	return err
}

// releaseScript deletes the key only if it still holds our token
var releaseScript = goredis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`)

type RedisGuard struct {
	client *goredis.Client
	prefix string
}

func NewRedisGuard(client *goredis.Client, prefix string) *RedisGuard {
	return &RedisGuard{client: client, prefix: prefix}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (*Lease, error) {
	fullKey := g.prefix + key
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("submission guard setnx: %w", err)
	}
	if !ok {
		return nil, ErrHeld
	}

	return &Lease{
		key:   key,
		token: token,
		release: func(ctx context.Context, _, token string) error {
			return releaseScript.Run(ctx, g.client, []string{fullKey}, token).Err()
		},
	}, nil
}

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryGuard is the single-process fallback.
type MemoryGuard struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string, ttl time.Duration) (*Lease, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if entry, ok := g.entries[key]; ok && now.Before(entry.expiresAt) {
		return nil, ErrHeld
	}

	token := uuid.NewString()
	g.entries[key] = memoryEntry{token: token, expiresAt: now.Add(ttl)}

	// drop expired entries so abandoned keys do not pile up
	for k, entry := range g.entries {
		if !now.Before(entry.expiresAt) {
			delete(g.entries, k)
		}
	}

	return &Lease{key: key, token: token, release: g.release}, nil
}

func (g *MemoryGuard) release(_ context.Context, key, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if entry, ok := g.entries[key]; ok && entry.token == token {
		delete(g.entries, key)
	}
	return nil
}

// FallbackGuard prefers Redis and falls back to memory when Redis errors.
type FallbackGuard struct {
	primary  Guard
	fallback Guard
	onError  func(error)
}

// NewGuard returns a Redis-backed guard with memory fallback, or a plain
// memory guard when client is nil.
func NewGuard(client *goredis.Client, prefix string, onError func(error)) Guard {
	if client == nil {
		return NewMemoryGuard()
	}
	return &FallbackGuard{
		primary:  NewRedisGuard(client, prefix),
		fallback: NewMemoryGuard(),
		onError:  onError,
	}
}

func (g *FallbackGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (*Lease, error) {
	lease, err := g.primary.Acquire(ctx, key, ttl)
	if err == nil || errors.Is(err, ErrHeld) {
		return lease, err
	}
	if g.onError != nil {
		g.onError(err)
	}
	return g.fallback.Acquire(ctx, key, ttl)
}
