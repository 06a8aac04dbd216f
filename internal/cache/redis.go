package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vitaverse/internal/leaderboard"

	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "leaderboard:snapshot:"

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, redisURL string) (*RedisClient, error) {
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func snapshotKey(source string) string {
	return snapshotKeyPrefix + source
}

// SaveSnapshot stores the raw leaderboard snapshot with expiration
func (r *RedisClient) SaveSnapshot(ctx context.Context, snap *leaderboard.Snapshot, ttl time.Duration) error {
	jsonData, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.client.Set(ctx, snapshotKey(snap.Source), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot in Redis: %w", err)
	}
	return nil
}

// LoadSnapshot returns the cached snapshot for a source, if present
func (r *RedisClient) LoadSnapshot(ctx context.Context, source string) (*leaderboard.Snapshot, bool, error) {
	data, err := r.client.Get(ctx, snapshotKey(source)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get snapshot from Redis: %w", err)
	}

	var snap leaderboard.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, true, nil
}

// InvalidateSnapshots drops every cached snapshot
func (r *RedisClient) InvalidateSnapshots(ctx context.Context) error {
	return r.client.Del(ctx,
		snapshotKey(leaderboard.SourceActive),
		snapshotKey(leaderboard.SourceTop),
	).Err()
}

// Get Redis status
func (r *RedisClient) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
