package repository_travel

import (
	"context"
	"fmt"
	"time"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"github.com/lakbay-travel/lakbay-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepository struct {
	db         mongo.Database
	collection string
}

func NewReviewRepository(db mongo.Database, collection string) travel_interface.ReviewRepository {
	return &reviewRepository{
		db:         db,
		collection: collection,
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *travel_models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	if review.DatetimeCreated.IsZero() {
		review.DatetimeCreated = time.Now().UTC()
	}
	if _, err := coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("评价创建失败: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByLocation(
	ctx context.Context,
	locationID primitive.ObjectID,
) ([]travel_models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.D{{Key: "location", Value: locationID}},
		options.Find().SetSort(bson.D{{Key: "datetime_created", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("评价查询失败: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	var reviews []travel_models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("评价解码失败: %w", err)
	}
	return reviews, nil
}

// AverageRatings 按地点分组求平均评分，一次聚合取回全量
func (r *reviewRepository) AverageRatings(ctx context.Context) (map[primitive.ObjectID]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	pipeline := []bson.D{
		{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$location"},
				{Key: "average", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			}},
		},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("评分聚合失败: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	var ratings []travel_models.LocationRating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("评分解码失败: %w", err)
	}

	result := make(map[primitive.ObjectID]float64, len(ratings))
	for _, rating := range ratings {
		result[rating.Location] = rating.Average
	}
	return result, nil
}

func (r *reviewRepository) GetLocationIDsByUser(
	ctx context.Context,
	userID primitive.ObjectID,
) ([]primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.D{{Key: "user", Value: userID}},
		options.Find().SetProjection(bson.D{{Key: "location", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("用户评价查询失败: %w", err)
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
		return nil, fmt.Errorf("用户评价解码失败: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Location)
	}
	return ids, nil
}
