package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/lakbay-travel/lakbay-backend/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes 启动时建立推荐查询依赖的索引
func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	spotCollection := db.Collection(domain.CollectionLocationSpot)
	createIndex(ctx, spotCollection, bson.D{{Key: "name", Value: 1}}, "spot_name")
	createIndex(ctx, spotCollection, bson.D{{Key: "tags", Value: 1}}, "spot_tags")

	foodPlaceCollection := db.Collection(domain.CollectionLocationFoodPlace)
	createIndex(ctx, foodPlaceCollection, bson.D{{Key: "name", Value: 1}}, "food_place_name")

	reviewCollection := db.Collection(domain.CollectionReview)
	createIndex(ctx, reviewCollection, bson.D{{Key: "location", Value: 1}}, "review_location")
	createIndex(ctx, reviewCollection, bson.D{{Key: "user", Value: 1}}, "review_user")

	itineraryCollection := db.Collection(domain.CollectionItinerary)
	createIndex(ctx, itineraryCollection, bson.D{{Key: "user", Value: 1}}, "itinerary_user")

	dayCollection := db.Collection(domain.CollectionItineraryDay)
	createIndex(ctx, dayCollection, bson.D{{Key: "itinerary", Value: 1}}, "day_itinerary")
	createIndex(ctx, dayCollection, bson.D{
		{Key: "itinerary", Value: 1},
		{Key: "completed", Value: 1}}, "day_itinerary_completed_compound")

	itemCollection := db.Collection(domain.CollectionItineraryItem)
	createIndex(ctx, itemCollection, bson.D{{Key: "day", Value: 1}, {Key: "order", Value: 1}}, "item_day_order_compound")

	userCollection := db.Collection(domain.CollectionUser)
	createIndex(ctx, userCollection, bson.D{{Key: "email", Value: 1}}, "user_email")

	preferencesCollection := db.Collection(domain.CollectionPreferences)
	createIndex(ctx, preferencesCollection, bson.D{{Key: "user", Value: 1}}, "preferences_user")

	modelItineraryCollection := db.Collection(domain.CollectionModelItinerary)
	createIndex(ctx, modelItineraryCollection, bson.D{{Key: "locations", Value: 1}}, "model_itinerary_locations")
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		fmt.Printf("创建索引 '%s' 失败: %v\n", name, err)
	}
}
