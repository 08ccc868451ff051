package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gift-recommender-be/internal/metrics"
	"gift-recommender-be/pkg/store"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const DefaultPrefix = "gift:session:"

// SessionRepository stores sessions as JSON documents under prefixed keys.
// A non-zero ttl lets redis drop sessions the sweep never reaches.
type SessionRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, prefix string, ttl time.Duration) *SessionRepository {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &SessionRepository{client: client, prefix: prefix, ttl: ttl}
}

func (r *SessionRepository) key(id string) string {
	return r.prefix + id
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.Session, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var s store.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

func (r *SessionRepository) Save(ctx context.Context, s *store.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, r.key(s.ID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("redis delete: %w", err)
	}
	return n > 0, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	metrics.SessionsActive.Set(float64(len(ids)))
	return ids, nil
}

// Sweep deletes sessions whose last access is older than maxAge. Entries that
// no longer decode are removed too.
func (r *SessionRepository) Sweep(ctx context.Context, maxAge time.Duration, now time.Time) (int, error) {
	ids, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, id := range ids {
		raw, err := r.client.Get(ctx, r.key(id)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("redis get: %w", err)
		}
		var s store.Session
		if json.Unmarshal(raw, &s) == nil && now.Sub(s.LastAccessed) <= maxAge {
			continue
		}
		if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
			return removed, fmt.Errorf("redis delete: %w", err)
		}
		removed++
	}

	metrics.SessionsExpired.Add(float64(removed))
	metrics.SessionsActive.Set(float64(len(ids) - removed))
	return removed, nil
}

func (r *SessionRepository) Close() error {
	return r.client.Close()
}
