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

type spotRepository struct {
	db         mongo.Database
	collection string
}

func NewSpotRepository(db mongo.Database, collection string) travel_interface.SpotRepository {
	return &spotRepository{
		db:         db,
		collection: collection,
	}
}

func (r *spotRepository) GetAll(ctx context.Context) ([]travel_models.Spot, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("景点查询失败: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	var spots []travel_models.Spot
	if err := cursor.All(ctx, &spots); err != nil {
		return nil, fmt.Errorf("景点解码失败: %w", err)
	}
	return spots, nil
}

func (r *spotRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*travel_models.Spot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	var spot travel_models.Spot
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&spot)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("景点查询失败: %w", err)
	}
	return &spot, nil
}

func (r *spotRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]travel_models.Spot, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.D{
		{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}},
	})
	if err != nil {
		return nil, fmt.Errorf("景点批量查询失败: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	var spots []travel_models.Spot
	if err := cursor.All(ctx, &spots); err != nil {
		return nil, fmt.Errorf("景点解码失败: %w", err)
	}
	return spots, nil
}

func (r *spotRepository) Create(ctx context.Context, spot *travel_models.Spot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	if spot.ID.IsZero() {
		spot.ID = primitive.NewObjectID()
	}
	spot.LocationType = travel_models.LocationTypeSpot
	if _, err := coll.InsertOne(ctx, spot); err != nil {
		return fmt.Errorf("景点创建失败: %w", err)
	}
	return nil
}
