package middleware

import (
	"errors"
	"strconv"

	"staffdir/config"
	"staffdir/internal/core"
	"staffdir/internal/database/redis/repository"
	cErr "staffdir/internal/pkg/error"
	"staffdir/internal/pkg/response"
	"staffdir/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type RateLimit struct {
	trace                 *telemetry.Trace
	metric                *telemetry.Metric
	rateLimiterRepository *repository.RateLimiterRepository
	limitCount            int
	windowSeconds         int64
}

func NewRateLimit(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	searchConfig := config.Search.Normalize()
	return &RateLimit{
		trace:                 trace,
		metric:                metric,
		rateLimiterRepository: rateLimiterRepository,
		limitCount:            searchConfig.RateLimitCount,
		windowSeconds:         searchConfig.RateLimitWindowSeconds,
	}
}

// Guard 以租戶為單位做固定視窗限流；Redis 故障時放行（限流是保護機制，不是正確性依賴）
func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRateLimitMiddleware))

		// 從 Auth middleware 放進 gin.Context 的資訊
		rawID, ok := c.Get("tenantID")
		if !ok {
			err := cErr.Unauthorized("missing tenant identity")
			end(err)
			response.AbortWithError(c, err)
			return
		}
		tenantIdentifier, _ := rawID.(int64)

		remaining, ttlSec, consumeError := middleware.rateLimiterRepository.Consume(
			ctx,
			tenantIdentifier,
			middleware.windowSeconds,
			middleware.limitCount,
		)

		if consumeError != nil && !errors.Is(consumeError, repository.ErrRateLimitExceeded) {
			// Redis 連不上：放行
			end(nil)
			c.Next()
			return
		}

		// 寫入回應標頭，方便呼叫端與排錯
		c.Header("X-RateLimit-Limit", strconv.Itoa(middleware.limitCount))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if ttlSec > 0 {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(ttlSec, 10))
		}

		if errors.Is(consumeError, repository.ErrRateLimitExceeded) {
			if ttlSec > 0 {
				c.Header("Retry-After", strconv.FormatInt(ttlSec, 10))
			}
			if middleware.metric != nil && middleware.metric.RateLimitTotal != nil {
				middleware.metric.RateLimitTotal.WithLabelValues("window_exhausted").Inc()
			}
			err := cErr.RateLimitExceeded("rate limit exceeded")
			end(err)
			response.AbortWithError(c, err)
			return
		}

		end(nil)
		c.Next()
	}
}
