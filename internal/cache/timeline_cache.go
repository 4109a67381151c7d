package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/a-epstein/microblog/internal/model"
)

type TimelineCache struct {
	client         *redisv9.Client
	timelineTTL    time.Duration
	dirtyMarkerTTL time.Duration
}

func NewTimelineCache(client *redisv9.Client, timelineTTL, dirtyMarkerTTL time.Duration) *TimelineCache {
	if timelineTTL <= 0 {
		timelineTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &TimelineCache{
		client:         client,
		timelineTTL:    timelineTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *TimelineCache) Get(ctx context.Context, userID uint) ([]model.Post, bool, error) {
	raw, err := c.client.Get(ctx, c.timelineKey(userID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get timeline failed: %w", err)
	}

	var posts []model.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached timeline failed: %w", err)
	}
	return posts, true, nil
}

func (c *TimelineCache) Set(ctx context.Context, userID uint, posts []model.Post) error {
	payload, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("marshal timeline cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.timelineKey(userID), payload, c.timelineTTL).Err(); err != nil {
		return fmt.Errorf("redis set timeline failed: %w", err)
	}
	return nil
}

func (c *TimelineCache) Delete(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.timelineKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete timeline failed: %w", err)
	}
	return nil
}

func (c *TimelineCache) MarkDirty(ctx context.Context, userID uint) error {
	if err := c.client.Set(ctx, c.dirtyKey(userID), "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *TimelineCache) IsDirty(ctx context.Context, userID uint) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *TimelineCache) timelineKey(userID uint) string {
	return fmt.Sprintf("timeline:home:%d", userID)
}

func (c *TimelineCache) dirtyKey(userID uint) string {
	return fmt.Sprintf("timeline:home:dirty:%d", userID)
}
