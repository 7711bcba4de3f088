// Package slotlock serialises check-then-write on a single slot key across
// processes. It narrows the race window only; the store's unique index on
// the slot stays authoritative.
package slotlock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrBusy = errors.New("slot lock held by another writer")

// Release gives the lock back. It is safe to call more than once.
type Release func()

type Locker interface {
	Acquire(ctx context.Context, key string) (Release, error)
}

// --------------------------------------------------
// Noop
// --------------------------------------------------

type Noop struct{}

func (Noop) Acquire(context.Context, string) (Release, error) {
	return func() {}, nil
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

// unlock deletes the key only while it still holds our token.
var unlock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &RedisLocker{client: client, ttl: ttl, prefix: "or-harmony:"}
}

// Connect parses a redis:// URL and verifies the server answers.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (Release, error) {
	full := l.prefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, full, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBusy
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		// the request context may already be cancelled
		_ = unlock.Run(context.Background(), l.client, []string{full}, token).Err()
	}, nil
}

var (
	_ Locker = Noop{}
	_ Locker = (*RedisLocker)(nil)
)
