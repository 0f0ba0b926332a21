package travel_interface

import (
	"context"
)

// RecommendUsecase 推荐服务入口，五种调用形态
// 返回按推荐分数降序排列的地点/行程模板id列表，数量不超过各模式的topK
type RecommendUsecase interface {
	// GetHomepageRecommendations 首页推荐流
	GetHomepageRecommendations(ctx context.Context, userID string) ([]string, error)

	// GetLocationRecommendations 地点详情页的相似地点推荐
	GetLocationRecommendations(ctx context.Context, userID, locationID string) ([]string, error)

	// GetContentRecommendations 预算约束下的行程模板推荐
	GetContentRecommendations(ctx context.Context, userID string, budget float64) ([]string, error)

	// GetSpotChainRecommendations 以某天最后一个景点为锚的下一站推荐
	GetSpotChainRecommendations(ctx context.Context, userID, dayID string) ([]string, error)

	// GetFoodChainRecommendations 以某天最后一个地点为锚的附近餐饮推荐
	GetFoodChainRecommendations(ctx context.Context, userID, dayID string) ([]string, error)
}
