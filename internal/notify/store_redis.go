package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"compliancedesk/pkg/platform/sentinel"
)

const (
	keyPrefix = "notify:"
	indexKey  = "notify:index"
)

// Redis stores each banner under its own key with a TTL, so expiry is
// handled by the server. A sorted set indexes ids by creation time and is
// pruned lazily on List.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func (s *Redis) Push(ctx context.Context, n Notification) (Notification, error) {
	n.ExpiresAt = n.CreatedAt.Add(s.ttl)
	payload, err := json.Marshal(n)
	if err != nil {
		return Notification{}, fmt.Errorf("encode notification: %w", err)
	}
	ok, err := s.client.SetNX(ctx, keyPrefix+n.ID, payload, s.ttl).Result()
	if err != nil {
		return Notification{}, fmt.Errorf("store notification: %w: %w", sentinel.ErrUnavailable, err)
	}
	if !ok {
		return Notification{}, fmt.Errorf("notification %s: %w", n.ID, sentinel.ErrConflict)
	}
	score := float64(n.CreatedAt.UnixNano())
	if err := s.client.ZAdd(ctx, indexKey, redis.Z{Score: score, Member: n.ID}).Err(); err != nil {
		return Notification{}, fmt.Errorf("index notification: %w: %w", sentinel.ErrUnavailable, err)
	}
	return n, nil
}

// List returns visible banners, oldest first.
func (s *Redis) List(ctx context.Context) ([]Notification, error) {
	ids, err := s.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w: %w", sentinel.ErrUnavailable, err)
	}
	if len(ids) == 0 {
		return []Notification{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyPrefix + id
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w: %w", sentinel.ErrUnavailable, err)
	}

	out := make([]Notification, 0, len(values))
	var stale []any
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var n Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			stale = append(stale, ids[i])
			continue
		}
		out = append(out, n)
	}
	if len(stale) > 0 {
		// expired keys leave their index entry behind
		_ = s.client.ZRem(ctx, indexKey, stale...).Err()
	}
	return out, nil
}

func (s *Redis) Dismiss(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, keyPrefix+id).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("dismiss notification: %w: %w", sentinel.ErrUnavailable, err)
	}
	_ = s.client.ZRem(ctx, indexKey, id).Err()
	if removed == 0 {
		return fmt.Errorf("notification %s: %w", id, sentinel.ErrNotFound)
	}
	return nil
}
