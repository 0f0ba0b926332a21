package travel_interface

import (
	"context"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SpotRepository interface {
	GetAll(ctx context.Context) ([]travel_models.Spot, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*travel_models.Spot, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]travel_models.Spot, error)
	Create(ctx context.Context, spot *travel_models.Spot) error
}

type FoodPlaceRepository interface {
	GetAll(ctx context.Context) ([]travel_models.FoodPlace, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*travel_models.FoodPlace, error)
	Create(ctx context.Context, foodPlace *travel_models.FoodPlace) error
}

type LocationUsecase interface {
	GetAllSpots(ctx context.Context) ([]travel_models.Spot, error)
	GetAllFoodPlaces(ctx context.Context) ([]travel_models.FoodPlace, error)
	SearchSpots(ctx context.Context, query string) ([]travel_models.Spot, error)
}
