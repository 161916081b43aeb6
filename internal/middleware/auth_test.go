package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffdir/config"
	"staffdir/internal/core"
	cErr "staffdir/internal/pkg/error"
	"staffdir/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "unit-test-secret"

func newTestAuth() *Auth {
	return &Auth{
		trace: &telemetry.Trace{},
		config: &config.Configuration{
			App: config.App{SecretKey: testSecretKey},
		},
	}
}

func signToken(t *testing.T, claims *core.Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runGuard(t *testing.T, authorizationHeader string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	if authorizationHeader != "" {
		c.Request.Header.Set("Authorization", authorizationHeader)
	}
	newTestAuth().Guard()(c)
	return c
}

func lastErrorCode(t *testing.T, c *gin.Context) int {
	t.Helper()
	require.NotEmpty(t, c.Errors)
	appError, ok := c.Errors.Last().Err.(*cErr.Error)
	require.True(t, ok)
	return appError.HttpCode()
}

func TestGuardMissingHeader(t *testing.T) {
	c := runGuard(t, "")

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusUnauthorized, lastErrorCode(t, c))
	_, exists := c.Get("tenantID")
	require.False(t, exists)
}

func TestGuardNonBearerScheme(t *testing.T) {
	c := runGuard(t, "Basic b3BzOnBhc3N3b3Jk")

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusUnauthorized, lastErrorCode(t, c))
}

func TestGuardValidToken(t *testing.T) {
	token := signToken(t, &core.Claims{Account: "ops", TenantID: 7}, testSecretKey)
	c := runGuard(t, "Bearer "+token)

	require.False(t, c.IsAborted())
	tenantID, exists := c.Get("tenantID")
	require.True(t, exists)
	require.Equal(t, int64(7), tenantID)
	account, _ := c.Get("account")
	require.Equal(t, "ops", account)
}

func TestGuardWrongSecret(t *testing.T) {
	token := signToken(t, &core.Claims{Account: "ops", TenantID: 7}, "some-other-secret")
	c := runGuard(t, "Bearer "+token)

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusUnauthorized, lastErrorCode(t, c))
}

func TestGuardExpiredToken(t *testing.T) {
	token := signToken(t, &core.Claims{
		Account:  "ops",
		TenantID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecretKey)
	c := runGuard(t, "Bearer "+token)

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusUnauthorized, lastErrorCode(t, c))
}

// token 合法但沒帶租戶，等同無效：多租戶隔離以 TenantID 為邊界
func TestGuardTokenWithoutTenant(t *testing.T) {
	token := signToken(t, &core.Claims{Account: "ops"}, testSecretKey)
	c := runGuard(t, "Bearer "+token)

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusUnauthorized, lastErrorCode(t, c))
	_, exists := c.Get("tenantID")
	require.False(t, exists)
}
