package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of the go-redis API the store needs. It is
// satisfied by *redis.Client and *redis.ClusterClient.
type RedisClient interface {
	GetEx(ctx context.Context, key string, expiration time.Duration) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

const (
	defaultRedisPrefix = "promptgen:session:"
	defaultRedisTTL    = 12 * time.Hour
)

// RedisStore keeps records in Redis as JSON with a sliding expiry, so several
// server instances can share sessions.
type RedisStore struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps client. An empty prefix or non-positive ttl selects the
// defaults.
func NewRedisStore(client RedisClient, prefix string, ttl time.Duration) *RedisStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	if ttl <= 0 {
		ttl = defaultRedisTTL
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// Key returns the Redis key used for id.
func (s *RedisStore) Key(id string) string {
	return s.prefix + id
}

// Load returns the record stored under id. A hit pushes the expiry out by
// the store ttl.
func (s *RedisStore) Load(ctx context.Context, id string) (Record, bool, error) {
	if s == nil || s.client == nil {
		return Record{}, false, errors.New("session: redis client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, false, nil
	}

	raw, err := s.client.GetEx(ctx, s.Key(id), s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("session: redis getex: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, false, fmt.Errorf("session: decode record: %w", err)
	}
	return rec, true, nil
}

// Save stores rec under id and refreshes its expiry.
func (s *RedisStore) Save(ctx context.Context, id string, rec Record) error {
	if s == nil || s.client == nil {
		return errors.New("session: redis client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("session: id is required")
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session: encode record: %w", err)
	}
	if err := s.client.Set(ctx, s.Key(id), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}
