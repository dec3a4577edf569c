package badge

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/s21platform/chat-service/internal/config"
)

// AggregateSource yields the authoritative unread count from storage.
type AggregateSource interface {
	GetGlobalUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Synchronizer owns the process-wide unread badge. The cached value is a
// hint with a freshness window; any invalidation drops it and the next read
// refetches the persisted aggregate. Concurrent deltas are never merged,
// last invalidate-and-refetch wins.
type Synchronizer struct {
	source AggregateSource
	cache  *redis.Client
	ttl    time.Duration
}

func New(cfg *config.Config, source AggregateSource) *Synchronizer {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &Synchronizer{
		source: source,
		cache:  client,
		ttl:    cfg.Redis.UnreadTTL,
	}
}

func (s *Synchronizer) Close() {
	_ = s.cache.Close()
}

func cacheKey(userID uuid.UUID) string {
	return "chat:unread:" + userID.String()
}

// Count returns the cached aggregate, refetching from storage on a miss.
func (s *Synchronizer) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	cached, err := s.cache.Get(ctx, cacheKey(userID)).Result()
	if err == nil {
		count, parseErr := strconv.ParseInt(cached, 10, 64)
		if parseErr == nil {
			return count, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read unread cache: %w", err)
	}

	count, err := s.source.GetGlobalUnreadCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch unread aggregate: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey(userID), count, s.ttl).Err(); err != nil {
		return count, fmt.Errorf("failed to cache unread aggregate: %w", err)
	}

	return count, nil
}

// Adjust applies an optimistic delta to an existing cached value. A missing
// key is left alone: the next Count refetches anyway.
func (s *Synchronizer) Adjust(ctx context.Context, userID uuid.UUID, delta int64) error {
	exists, err := s.cache.Exists(ctx, cacheKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("failed to read unread cache: %w", err)
	}
	if exists == 0 {
		return nil
	}

	if err := s.cache.IncrBy(ctx, cacheKey(userID), delta).Err(); err != nil {
		return fmt.Errorf("failed to adjust unread cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached aggregate so subsequent reads are consistent
// with the persisted truth.
func (s *Synchronizer) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := s.cache.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate unread cache: %w", err)
	}

	return nil
}
