package search

import (
	"fmt"
)

// Mode 分頁模式
type Mode string

const (
	ModeOffset Mode = "offset"
	ModeCursor Mode = "cursor"
)

// PageRequest 分頁參數；Cursor 為 nil 代表從頭開始
type PageRequest struct {
	Mode   Mode
	Limit  int64
	Offset int64
	Cursor *int64
}

// Normalize 補上預設 limit（未指定或 0 時）
func (p PageRequest) Normalize(defaultLimit int64) PageRequest {
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	return p
}

// Validate 在任何 I/O 之前檢查參數範圍
func (p PageRequest) Validate(maxLimit int64) error {
	if p.Limit < 1 || p.Limit > maxLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", maxLimit, p.Limit)
	}
	switch p.Mode {
	case ModeOffset:
		if p.Offset < 0 {
			return fmt.Errorf("offset must not be negative, got %d", p.Offset)
		}
	case ModeCursor:
		if p.Cursor != nil && *p.Cursor < 0 {
			return fmt.Errorf("cursor must not be negative, got %d", *p.Cursor)
		}
	default:
		return fmt.Errorf("unknown pagination mode %q", p.Mode)
	}
	return nil
}
