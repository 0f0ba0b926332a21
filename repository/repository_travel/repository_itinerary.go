package repository_travel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lakbay-travel/lakbay-backend/domain"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
	"github.com/lakbay-travel/lakbay-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type itineraryRepository struct {
	db         mongo.Database
	collection string
}

func NewItineraryRepository(db mongo.Database, collection string) travel_interface.ItineraryRepository {
	return &itineraryRepository{
		db:         db,
		collection: collection,
	}
}

// GetCompletedLocationIDs 行程 -> 已完成天数 -> 安排项，三级lookup后只保留地点id
func (r *itineraryRepository) GetCompletedLocationIDs(
	ctx context.Context,
	userID primitive.ObjectID,
) ([]primitive.ObjectID, error) {
	return r.locationIDsByUser(ctx, userID, true)
}

func (r *itineraryRepository) GetAllLocationIDs(
	ctx context.Context,
	userID primitive.ObjectID,
) ([]primitive.ObjectID, error) {
	return r.locationIDsByUser(ctx, userID, false)
}

func (r *itineraryRepository) locationIDsByUser(
	ctx context.Context,
	userID primitive.ObjectID,
	completedOnly bool,
) ([]primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	dayMatch := bson.D{
		{Key: "$expr", Value: bson.D{
			{Key: "$eq", Value: bson.A{"$itinerary", "$$itineraryId"}},
		}},
	}
	if completedOnly {
		dayMatch = append(dayMatch, bson.E{Key: "completed", Value: true})
	}

	pipeline := []bson.D{
		{
			{Key: "$match", Value: bson.D{{Key: "user", Value: userID}}},
		},
		{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: domain.CollectionItineraryDay},
				{Key: "let", Value: bson.D{{Key: "itineraryId", Value: "$_id"}}},
				{Key: "pipeline", Value: []bson.D{
					{{Key: "$match", Value: dayMatch}},
				}},
				{Key: "as", Value: "days"},
			}},
		},
		{
			{Key: "$unwind", Value: "$days"},
		},
		{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: domain.CollectionItineraryItem},
				{Key: "localField", Value: "days._id"},
				{Key: "foreignField", Value: "day"},
				{Key: "as", Value: "items"},
			}},
		},
		{
			{Key: "$unwind", Value: "$items"},
		},
		{
			{Key: "$project", Value: bson.D{
				{Key: "_id", Value: 0},
				{Key: "location", Value: "$items.location"},
			}},
		},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("行程地点聚合失败: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	var rows []struct {
		Location primitive.ObjectID `bson:"location"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("行程地点解码失败: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Location)
	}
	return ids, nil
}

func (r *itineraryRepository) GetDayLocationIDs(
	ctx context.Context,
	dayID primitive.ObjectID,
) ([]primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	coll := r.db.Collection(domain.CollectionItineraryItem)

	cursor, err := coll.Find(ctx, bson.D{{Key: "day", Value: dayID}},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("当日地点查询失败: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	var rows []struct {
		Location primitive.ObjectID `bson:"location"`
		Order    int                `bson:"order"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("当日地点解码失败: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Location)
	}
	return ids, nil
}

func (r *itineraryRepository) IsDayCompleted(
	ctx context.Context,
	dayID primitive.ObjectID,
) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(domain.CollectionItineraryDay)

	var day struct {
		Completed bool `bson:"completed"`
	}
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: dayID}}).Decode(&day)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return false, fmt.Errorf("行程天数不存在: %s", dayID.Hex())
		}
		return false, fmt.Errorf("行程天数查询失败: %w", err)
	}
	return day.Completed, nil
}
