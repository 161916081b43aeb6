package repository

import (
	"github.com/google/wire"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewOrgFieldsRepository,
	NewCountRepository,
	NewRateLimiterRepository)
