package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/devloperakramul/aka-loan-amortization/internal/domain"

	"github.com/redis/go-redis/v9"
)

const planKeyPrefix = "payoff:plan:"

type planCache struct {
	client *redis.Client
}

func NewPlanCache(client *redis.Client) PlanCache {
	return &planCache{client: client}
}

func (c *planCache) Get(ctx context.Context, key string) (*domain.PlanResponse, error) {
	data, err := c.client.Get(ctx, planKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var plan domain.PlanResponse
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *planCache) Set(ctx context.Context, key string, plan *domain.PlanResponse, ttl time.Duration) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, planKeyPrefix+key, data, ttl).Err()
}

func (c *planCache) InvalidateAll(ctx context.Context) (int, error) {
	dropped := 0
	iter := c.client.Scan(ctx, 0, planKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return dropped, err
		}
		dropped++
	}
	return dropped, iter.Err()
}
