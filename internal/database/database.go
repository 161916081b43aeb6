package database

import (
	client "staffdir/internal/database/client"
	fluentdRepo "staffdir/internal/database/fluentd/repository"
	mongoRepo "staffdir/internal/database/mongodb/repository"
	redisRepo "staffdir/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 與 repository 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
