package model

// SearchLog 每次員工查詢的審計紀錄
type SearchLog struct {
	RequestID   string `bson:"request_id,omitempty" json:"request_id"`
	ProjectName string `bson:"project_name,omitempty" json:"project_name,omitempty"`
	TenantID    int64  `bson:"tenant_id" json:"tenant_id"`
	Mode        string `bson:"mode" json:"mode"`
	Status      string `bson:"status,omitempty" json:"status,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	Company     string `bson:"company,omitempty" json:"company,omitempty"`
	Department  string `bson:"department,omitempty" json:"department,omitempty"`
	Position    string `bson:"position,omitempty" json:"position,omitempty"`
	Limit       int64  `bson:"limit" json:"limit"`
	Count       int64  `bson:"count" json:"count"`
	ResultCount int    `bson:"result_count" json:"result_count"`
	Version     string `bson:"version,omitempty" json:"version,omitempty"`
	LoggedAt    string `bson:"logged_at" json:"logged_at"`
}
