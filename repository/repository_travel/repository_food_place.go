package repository_travel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"github.com/lakbay-travel/lakbay-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type foodPlaceRepository struct {
	db         mongo.Database
	collection string
}

func NewFoodPlaceRepository(db mongo.Database, collection string) travel_interface.FoodPlaceRepository {
	return &foodPlaceRepository{
		db:         db,
		collection: collection,
	}
}

func (r *foodPlaceRepository) GetAll(ctx context.Context) ([]travel_models.FoodPlace, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("餐饮地点查询失败: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	var places []travel_models.FoodPlace
	if err := cursor.All(ctx, &places); err != nil {
		return nil, fmt.Errorf("餐饮地点解码失败: %w", err)
	}
	return places, nil
}

func (r *foodPlaceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*travel_models.FoodPlace, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	var place travel_models.FoodPlace
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&place)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("餐饮地点查询失败: %w", err)
	}
	return &place, nil
}

func (r *foodPlaceRepository) Create(ctx context.Context, foodPlace *travel_models.FoodPlace) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	if foodPlace.ID.IsZero() {
		foodPlace.ID = primitive.NewObjectID()
	}
	foodPlace.LocationType = travel_models.LocationTypeFoodPlace
	if _, err := coll.InsertOne(ctx, foodPlace); err != nil {
		return fmt.Errorf("餐饮地点创建失败: %w", err)
	}
	return nil
}
