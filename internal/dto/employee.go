package dto

// EmployeeSearchQueryDto 查詢條件（兩種分頁模式共用）；OrgID 為 nil 表示未指定
type EmployeeSearchQueryDto struct {
	OrgID      *int64 `form:"org_id" json:"org_id,omitempty"`
	Status     string `form:"status" json:"status,omitempty"`
	Location   string `form:"location" json:"location,omitempty"`
	Company    string `form:"company" json:"company,omitempty"`
	Department string `form:"department" json:"department,omitempty"`
	Position   string `form:"position" json:"position,omitempty"`
}

// OffsetPageDto 偏移分頁回應
type OffsetPageDto struct {
	Limit   int64            `json:"limit"`
	Offset  int64            `json:"offset"`
	Count   int64            `json:"count"`
	Results []map[string]any `json:"results"`
}

// CursorPageDto 游標分頁回應；NextCursor 為 nil 表示沒有下一頁
type CursorPageDto struct {
	Limit      int64            `json:"limit"`
	Cursor     *int64           `json:"cursor"`
	NextCursor *int64           `json:"next_cursor"`
	Count      int64            `json:"count"`
	Results    []map[string]any `json:"results"`
}
