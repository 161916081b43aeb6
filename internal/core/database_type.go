package core

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBStaffdir MongoDatabaseName = "staffdir"
)

// MongoDB collections
const (
	MongoCollectionOrganizations MongoCollection = "organizations"
	MongoCollectionEmployees     MongoCollection = "employees"
	MongoCollectionCounters      MongoCollection = "counters"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyOrgFields     RedisKey = "org_fields"     // 租戶可見欄位快取
	RedisKeyEmployeeCount RedisKey = "employee_count" // 篩選條件計數快取
	RedisKeyServerName    RedisKey = "staffdir"       // 伺服器名稱（限流 key 前綴）
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdSearch   FluentdSubTag = "search_log"
)
