package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	defaultTTL   = 10 * time.Second
	retryBackoff = 25 * time.Millisecond
)

// releaseScript deletes the key only while it still holds our token.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`

// redisClient is the part of *redis.Client the lock needs.
type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
	Close() error
}

// Redis is a Locker shared by every instance pointed at the same server.
type Redis struct {
	client redisClient
	prefix string
	ttl    time.Duration
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix, ttl: defaultTTL}
}

// Dial parses url, pings the server and returns a Locker.
func Dial(ctx context.Context, url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedis(client, "lock:"), nil
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	name := r.prefix + key
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, name, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire %s: %w", name, err)
		}
		if ok {
			break
		}

		select {
		case <-time.After(retryBackoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return func() {
		// the request context may already be cancelled here
		if err := r.client.Eval(context.Background(), releaseScript, []string{name}, token).Err(); err != nil {
			slog.Warn("releasing redis lock", "key", name, "error", err)
		}
	}, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
