package travel_interface

import (
	"context"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *travel_models.Review) error
	GetByLocation(ctx context.Context, locationID primitive.ObjectID) ([]travel_models.Review, error)

	// AverageRatings 按地点聚合平均评分，无评分的地点不在结果中（默认0.0）
	AverageRatings(ctx context.Context) (map[primitive.ObjectID]float64, error)

	// GetLocationIDsByUser 返回用户评价过的地点id，评价即视作已访问
	GetLocationIDsByUser(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)
}

type ReviewUsecase interface {
	CreateReview(ctx context.Context, review *travel_models.Review) error
	GetLocationReviews(ctx context.Context, locationID string) ([]travel_models.Review, error)
}
