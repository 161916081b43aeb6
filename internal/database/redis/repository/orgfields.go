package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staffdir/internal/core"
	client "staffdir/internal/database/client"
	"staffdir/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// OrgFieldsRepository 快取各租戶的可見欄位清單（JSON 編碼的字串陣列）
type OrgFieldsRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewOrgFieldsRepository(trace *telemetry.Trace, client *client.RedisClient) *OrgFieldsRepository {
	return &OrgFieldsRepository{trace: trace, client: client.Client()}
}

// Get 回傳 (fields, found, error)；found=false 代表快取未命中
func (repository *OrgFieldsRepository) Get(contextValue context.Context, tenantIdentifier int64) (_ []string, _ bool, returnedError error) {
	redisKey := repository.buildKey(tenantIdentifier)

	raw, getError := repository.client.Get(contextValue, redisKey).Result()
	if getError == redis.Nil {
		return nil, false, nil
	}
	if getError != nil {
		return nil, false, getError
	}

	var fields []string
	if unmarshalError := json.Unmarshal([]byte(raw), &fields); unmarshalError != nil {
		// 快取內容損毀視同未命中，呼叫端會回源重建
		return nil, false, nil
	}
	return fields, true, nil
}

func (repository *OrgFieldsRepository) Set(contextValue context.Context, tenantIdentifier int64, fields []string, expiration time.Duration) (returnedError error) {
	encoded, marshalError := json.Marshal(fields)
	if marshalError != nil {
		return marshalError
	}
	return repository.client.Set(contextValue, repository.buildKey(tenantIdentifier), encoded, expiration).Err()
}

// Delete 移除租戶的欄位快取（組織設定變更時失效用）
func (repository *OrgFieldsRepository) Delete(contextValue context.Context, tenantIdentifier int64) (returnedError error) {
	return repository.client.Del(contextValue, repository.buildKey(tenantIdentifier)).Err()
}

// buildKey 建構欄位可見性快取的 Redis key
func (r *OrgFieldsRepository) buildKey(tenantIdentifier int64) string {
	return fmt.Sprintf("%s:%d", core.RedisKeyOrgFields, tenantIdentifier)
}
