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

type modelItineraryRepository struct {
	db         mongo.Database
	collection string
}

func NewModelItineraryRepository(db mongo.Database, collection string) travel_interface.ModelItineraryRepository {
	return &modelItineraryRepository{
		db:         db,
		collection: collection,
	}
}

func (r *modelItineraryRepository) GetAll(ctx context.Context) ([]travel_models.ModelItinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("行程模板查询失败: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	var itineraries []travel_models.ModelItinerary
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, fmt.Errorf("行程模板解码失败: %w", err)
	}
	return itineraries, nil
}

func (r *modelItineraryRepository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*travel_models.ModelItinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	var itinerary travel_models.ModelItinerary
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&itinerary)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("行程模板查询失败: %w", err)
	}
	return &itinerary, nil
}
