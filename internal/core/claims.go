package core

import "github.com/golang-jwt/jwt/v4"

// Claims 驗證後的呼叫者身分；TenantID 為多租戶隔離邊界
type Claims struct {
	Account  string `json:"account"`
	TenantID int64  `json:"tenant_id"`
	jwt.RegisteredClaims
}
