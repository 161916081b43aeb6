package search

import (
	"fmt"
	"sort"

	"staffdir/internal/database/mongodb/model"
)

// FieldID 為識別欄位；無論租戶設定為何都會包含在投影結果中，
// 游標分頁依賴每筆結果帶有識別欄位才能續頁。
const FieldID = "id"

// accessors 是欄位名稱到取值函式的明確對照表。
// 不用反射：新增欄位時必須同步擴充這張表。
var accessors = map[string]func(*model.Employee) any{
	FieldID:        func(e *model.Employee) any { return e.ID },
	"name":         func(e *model.Employee) any { return e.Name },
	"department":   func(e *model.Employee) any { return e.Department },
	"location":     func(e *model.Employee) any { return e.Location },
	"position":     func(e *model.Employee) any { return e.Position },
	"company":      func(e *model.Employee) any { return e.Company },
	"status":       func(e *model.Employee) any { return string(e.Status) },
	"contact_info": func(e *model.Employee) any { return e.ContactInfo },
}

// AllowedFields 回傳所有可設定的欄位名稱（排序後），供驗證與文件使用
func AllowedFields() []string {
	names := make([]string, 0, len(accessors))
	for name := range accessors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateFields 拒絕未知的欄位名稱，不靜默跳過
func ValidateFields(fields []string) error {
	for _, name := range fields {
		if _, ok := accessors[name]; !ok {
			return fmt.Errorf("unknown visible field %q", name)
		}
	}
	return nil
}

// Project 依可見欄位裁剪員工資料；識別欄位永遠包含
func Project(employee *model.Employee, visibleFields []string) map[string]any {
	result := make(map[string]any, len(visibleFields)+1)
	result[FieldID] = employee.ID
	for _, name := range visibleFields {
		accessor, ok := accessors[name]
		if !ok {
			continue // 未知欄位由 ValidateFields 先行拒絕
		}
		result[name] = accessor(employee)
	}
	return result
}

// ProjectAll 對一頁結果逐筆投影
func ProjectAll(employees []*model.Employee, visibleFields []string) []map[string]any {
	results := make([]map[string]any, 0, len(employees))
	for _, employee := range employees {
		results = append(results, Project(employee, visibleFields))
	}
	return results
}
