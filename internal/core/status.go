package core

type Status string

const (
	StatusActive    Status = "active"    // 正常可用
	StatusInactive  Status = "inactive"  // 停用
	StatusSuspended Status = "suspended" // 暫停（調查中）
	StatusDeleted   Status = "deleted"   // 已刪除（軟刪除）
)
