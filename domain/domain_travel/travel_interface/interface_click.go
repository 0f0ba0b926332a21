package travel_interface

import (
	"context"
)

// ClickStore 外部点击遥测服务
// 查询失败时由调用方降级为空数据，不向上传播错误
type ClickStore interface {
	// GetUserClicks 返回用户对各地点的点击次数，key为地点id
	GetUserClicks(ctx context.Context, userID string) (map[string]int, error)

	// RecordClick 上报一次点击
	RecordClick(ctx context.Context, userID, locationID string) error
}
