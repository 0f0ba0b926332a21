package travel_interface

import (
	"context"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItineraryRepository interface {
	// GetCompletedLocationIDs 返回用户所有已完成天数内的地点id（访问顺序无关）
	GetCompletedLocationIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)

	// GetAllLocationIDs 返回用户全部行程内的地点id，不限完成状态
	GetAllLocationIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)

	// GetDayLocationIDs 按order返回某一天的地点id
	GetDayLocationIDs(ctx context.Context, dayID primitive.ObjectID) ([]primitive.ObjectID, error)

	// IsDayCompleted 返回某一天是否已标记完成
	IsDayCompleted(ctx context.Context, dayID primitive.ObjectID) (bool, error)
}

type ModelItineraryRepository interface {
	GetAll(ctx context.Context) ([]travel_models.ModelItinerary, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*travel_models.ModelItinerary, error)
}
