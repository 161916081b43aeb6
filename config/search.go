package config

// Search 員工查詢引擎相關設定；零值由 Normalize 補上預設
type Search struct {
	// 預設每頁筆數
	DefaultLimit int64 `mapstructure:"DEFAULT_LIMIT" json:"default_limit" yaml:"default_limit"`
	// 每頁筆數上限
	MaxLimit int64 `mapstructure:"MAX_LIMIT" json:"max_limit" yaml:"max_limit"`
	// 欄位可見性快取 TTL（秒）
	OrgFieldsTTLSeconds int64 `mapstructure:"ORG_FIELDS_TTL_SECONDS" json:"org_fields_ttl_seconds" yaml:"org_fields_ttl_seconds"`
	// 計數快取 TTL（秒）
	CountTTLSeconds int64 `mapstructure:"COUNT_TTL_SECONDS" json:"count_ttl_seconds" yaml:"count_ttl_seconds"`
	// 單一請求逾時（毫秒）
	RequestTimeoutMillis int64 `mapstructure:"REQUEST_TIMEOUT_MILLIS" json:"request_timeout_millis" yaml:"request_timeout_millis"`
	// 每租戶限流：視窗內可用次數
	RateLimitCount int `mapstructure:"RATE_LIMIT_COUNT" json:"rate_limit_count" yaml:"rate_limit_count"`
	// 每租戶限流：視窗秒數
	RateLimitWindowSeconds int64 `mapstructure:"RATE_LIMIT_WINDOW_SECONDS" json:"rate_limit_window_seconds" yaml:"rate_limit_window_seconds"`
	// 快取預熱週期（分鐘，0 表示停用）
	WarmIntervalMinutes int `mapstructure:"WARM_INTERVAL_MINUTES" json:"warm_interval_minutes" yaml:"warm_interval_minutes"`
}

func (s Search) Normalize() Search {
	if s.DefaultLimit <= 0 {
		s.DefaultLimit = 20
	}
	if s.MaxLimit <= 0 {
		s.MaxLimit = 100
	}
	if s.OrgFieldsTTLSeconds <= 0 {
		s.OrgFieldsTTLSeconds = 3600
	}
	if s.CountTTLSeconds <= 0 {
		s.CountTTLSeconds = 60
	}
	if s.RequestTimeoutMillis <= 0 {
		s.RequestTimeoutMillis = 5000
	}
	if s.RateLimitCount <= 0 {
		s.RateLimitCount = 10
	}
	if s.RateLimitWindowSeconds <= 0 {
		s.RateLimitWindowSeconds = 60
	}
	return s
}
