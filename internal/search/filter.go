package search

import (
	"strconv"
	"strings"

	"staffdir/internal/core"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter 員工查詢條件；空字串代表該條件未指定。
// 所有查詢一律以租戶為第一個條件，確保資料隔離。
type Filter struct {
	Status     string
	Location   string
	Company    string
	Department string
	Position   string
}

// Predicate 產生 MongoDB 查詢條件；tenantId 永遠包含在內
func (f Filter) Predicate(tenantIdentifier int64) bson.M {
	predicate := bson.M{"tenantId": tenantIdentifier}
	if f.Status != "" {
		predicate["status"] = core.Status(f.Status)
	}
	if f.Location != "" {
		predicate["location"] = f.Location
	}
	if f.Company != "" {
		predicate["company"] = f.Company
	}
	if f.Department != "" {
		predicate["department"] = f.Department
	}
	if f.Position != "" {
		predicate["position"] = f.Position
	}
	return predicate
}

// CacheKey 產生計數快取的 key。
// 格式固定為六段：employee_count:{tenant}:{status}:{location}:{company}:{department}:{position}，
// 未指定的條件保留空段，同一組條件永遠對應同一個 key。
func (f Filter) CacheKey(tenantIdentifier int64) string {
	return strings.Join([]string{
		string(core.RedisKeyEmployeeCount),
		strconv.FormatInt(tenantIdentifier, 10),
		f.Status,
		f.Location,
		f.Company,
		f.Department,
		f.Position,
	}, ":")
}

// IsZero 回傳是否完全未指定條件
func (f Filter) IsZero() bool {
	return f.Status == "" && f.Location == "" && f.Company == "" && f.Department == "" && f.Position == ""
}
