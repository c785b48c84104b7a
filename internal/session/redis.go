package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	keyPrefix  = "booking:session:"
	lockPrefix = "booking:session-lock:"

	lockTTL  = 30 * time.Second
	lockWait = 10 * time.Second
	lockPoll = 25 * time.Millisecond
)

// RedisStore shares sessions between replicas. Every key carries the TTL,
// so state disappears after the session goes idle.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Name() string {
	return "redis"
}

func key(id string) string {
	return keyPrefix + id
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Update holds a per-session lock for the whole read-modify-write, so fn
// runs exactly once and replicas never interleave turns of one session.
func (s *RedisStore) Update(ctx context.Context, id string, fn func(*State) error) error {
	release, err := s.lock(ctx, id)
	if err != nil {
		return err
	}
	defer release()

	k := key(id)
	state := &State{}

	raw, err := s.client.Get(ctx, k).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return fmt.Errorf("session: load %s: %w", id, err)
	default:
		if err := json.Unmarshal(raw, state); err != nil {
			return fmt.Errorf("session: decode %s: %w", id, err)
		}
	}

	if err := fn(state); err != nil {
		return err
	}
	state.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session: encode %s: %w", id, err)
	}
	if err := s.client.Set(ctx, k, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: save %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) lock(ctx context.Context, id string) (func(), error) {
	lk := lockPrefix + id
	token := uuid.NewString()
	deadline := time.Now().Add(lockWait)

	for {
		ok, err := s.client.SetNX(ctx, lk, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("session: lock %s: %w", id, err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, ErrConflict
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockPoll):
		}
	}

	return func() {
		_ = releaseScript.Run(context.Background(), s.client, []string{lk}, token).Err()
	}, nil
}

func (s *RedisStore) Reset(ctx context.Context, id string) error {
	return s.client.Del(ctx, key(id)).Err()
}

func (s *RedisStore) ResetAll(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *RedisStore) Len(ctx context.Context) (int, error) {
	n := 0
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n++
	}
	return n, iter.Err()
}

var _ Store = (*RedisStore)(nil)
