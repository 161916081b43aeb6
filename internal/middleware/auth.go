package middleware

import (
	"fmt"
	"strings"

	"staffdir/config"
	"staffdir/internal/core"
	cErr "staffdir/internal/pkg/error"
	"staffdir/internal/pkg/response"
	"staffdir/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

type Auth struct {
	trace  *telemetry.Trace
	config *config.Configuration
}

func NewAuth(trace *telemetry.Trace, config *config.Configuration) *Auth {
	return &Auth{trace: trace, config: config}
}

// Guard 驗證 Bearer token（HS256），並把租戶資訊放進 gin.Context
func (middleware *Auth) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			middleware.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
				Where: "header", Status: "missing_bearer_token",
			})
			err := cErr.Unauthorized("missing bearer token")
			end(err)
			response.AbortWithError(c, err)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims := &core.Claims{}
		token, parseError := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(middleware.config.App.SecretKey), nil
		})
		if parseError != nil || !token.Valid {
			middleware.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
				Where: "token", Status: "invalid_token",
			})
			err := cErr.InvalidToken("invalid or expired token")
			end(err)
			response.AbortWithError(c, err)
			return
		}
		if claims.TenantID <= 0 {
			middleware.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
				Account: claims.Account, Where: "claims", Status: "missing_tenant",
			})
			err := cErr.InvalidToken("token has no tenant")
			end(err)
			response.AbortWithError(c, err)
			return
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{
			TenantID: claims.TenantID,
			Account:  claims.Account,
			Status:   "ok",
		})

		c.Set("tenantID", claims.TenantID)
		c.Set("account", claims.Account)
		end(nil)
		c.Next()
	}
}
