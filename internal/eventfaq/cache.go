package eventfaq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache keeps the published FAQ of an event, which is what guests read.
type Cache interface {
	PublishedQuestions(ctx context.Context, eventID int) ([]Question, bool, error)
	SetPublishedQuestions(ctx context.Context, eventID int, questions []Question) error
	Invalidate(ctx context.Context, eventID int) error
}

type NopCache struct{}

func (NopCache) PublishedQuestions(context.Context, int) ([]Question, bool, error) {
	return nil, false, nil
}

func (NopCache) SetPublishedQuestions(context.Context, int, []Question) error { return nil }

func (NopCache) Invalidate(context.Context, int) error { return nil }

type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func publishedKey(eventID int) string {
	return fmt.Sprintf("faq:event:%d:published", eventID)
}

func (c *RedisCache) PublishedQuestions(ctx context.Context, eventID int) ([]Question, bool, error) {
	raw, err := c.client.Get(ctx, publishedKey(eventID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, false, fmt.Errorf("decode cached questions: %w", err)
	}

	return questions, true, nil
}

func (c *RedisCache) SetPublishedQuestions(ctx context.Context, eventID int, questions []Question) error {
	raw, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}

	if err := c.client.Set(ctx, publishedKey(eventID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, eventID int) error {
	if err := c.client.Del(ctx, publishedKey(eventID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}
