package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "session"

// RedisStore keeps sessions in Redis.
//
// Keys:
//
//	{prefix}:{token}        JSON-encoded session, expires with the session
//	{prefix}:flash:{id}     hash of pending flash messages
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration // flash hash lifetime
}

// RedisStoreOption configures the RedisStore.
type RedisStoreOption func(*RedisStore)

// WithRedisPrefix sets the key prefix. Default: "session".
// A trailing ":" is dropped; the store adds its own separator.
func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix = strings.TrimRight(prefix, ":"); prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithFlashTTL sets how long unread flash messages are kept. Default: 30 days.
func WithFlashTTL(d time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// NewRedisStore creates a Redis-backed session store.
// The client should be obtained from pkg/redis.Open.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: defaultRedisPrefix,
		ttl:    30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create persists a new session.
func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	return r.save(ctx, s)
}

// Get retrieves a session by its cookie token.
func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrUnmarshal, err)
	}
	if s.IsExpired() {
		return nil, ErrExpired
	}
	return &s, nil
}

// Update saves changes to an existing session.
func (r *RedisStore) Update(ctx context.Context, s *Session) error {
	return r.save(ctx, s)
}

// Delete removes the session stored under token.
func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.sessionKey(token)).Err()
}

// SetFlash stores a one-shot message for the session.
func (r *RedisStore) SetFlash(ctx context.Context, sessionID, key, value string) error {
	flashKey := r.flashKey(sessionID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, flashKey, key, value)
		pipe.Expire(ctx, flashKey, r.ttl)
		return nil
	})
	return err
}

// TakeFlash returns the message stored under key and removes it.
// HGET and HDEL run inside MULTI/EXEC, so only one caller observes the value.
func (r *RedisStore) TakeFlash(ctx context.Context, sessionID, key string) (string, bool, error) {
	flashKey := r.flashKey(sessionID)

	var get *redis.StringCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.HGet(ctx, flashKey, key)
		pipe.HDel(ctx, flashKey, key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", false, err
	}

	msg, err := get.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return msg, true, nil
}

func (r *RedisStore) save(ctx context.Context, s *Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return ErrExpired
	}

	data, err := json.Marshal(s)
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}
	return r.client.Set(ctx, r.sessionKey(s.Token), data, ttl).Err()
}

func (r *RedisStore) sessionKey(token string) string {
	return r.prefix + ":" + token
}

func (r *RedisStore) flashKey(sessionID string) string {
	return r.prefix + ":flash:" + sessionID
}

var _ Store = (*RedisStore)(nil)
