package repository

import (
	"context"
	"strconv"
	"time"

	client "staffdir/internal/database/client"
	"staffdir/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// CountRepository 快取查詢條件對應的總筆數；key 由 search.Filter 決定
type CountRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewCountRepository(trace *telemetry.Trace, client *client.RedisClient) *CountRepository {
	return &CountRepository{trace: trace, client: client.Client()}
}

// Get 回傳 (count, found, error)；found=false 代表快取未命中
func (repository *CountRepository) Get(contextValue context.Context, cacheKey string) (_ int64, _ bool, returnedError error) {
	raw, getError := repository.client.Get(contextValue, cacheKey).Result()
	if getError == redis.Nil {
		return 0, false, nil
	}
	if getError != nil {
		return 0, false, getError
	}

	count, parseError := strconv.ParseInt(raw, 10, 64)
	if parseError != nil {
		return 0, false, nil
	}
	return count, true, nil
}

func (repository *CountRepository) Set(contextValue context.Context, cacheKey string, count int64, expiration time.Duration) (returnedError error) {
	return repository.client.Set(contextValue, cacheKey, count, expiration).Err()
}
