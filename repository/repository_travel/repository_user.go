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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	db         mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) travel_interface.UserRepository {
	return &userRepository{
		db:         db,
		collection: collection,
	}
}

func (r *userRepository) Create(ctx context.Context, user *travel_models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("用户创建失败: %w", err)
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*travel_models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	var user travel_models.User
	err := coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("用户查询失败: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*travel_models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	var user travel_models.User
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("用户查询失败: %w", err)
	}
	return &user, nil
}

type preferencesRepository struct {
	db         mongo.Database
	collection string
}

func NewPreferencesRepository(db mongo.Database, collection string) travel_interface.PreferencesRepository {
	return &preferencesRepository{
		db:         db,
		collection: collection,
	}
}

func (r *preferencesRepository) GetByUser(
	ctx context.Context,
	userID primitive.ObjectID,
) (*travel_models.Preferences, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	var preferences travel_models.Preferences
	err := coll.FindOne(ctx, bson.D{{Key: "user", Value: userID}}).Decode(&preferences)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("偏好查询失败: %w", err)
	}
	return &preferences, nil
}

// Upsert 每个用户只保留一份偏好文档
func (r *preferencesRepository) Upsert(
	ctx context.Context,
	preferences *travel_models.Preferences,
) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	coll := r.db.Collection(r.collection)

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "activity", Value: preferences.Activity},
			{Key: "art", Value: preferences.Art},
			{Key: "culture", Value: preferences.Culture},
			{Key: "entertainment", Value: preferences.Entertainment},
			{Key: "history", Value: preferences.History},
			{Key: "nature", Value: preferences.Nature},
			{Key: "religion", Value: preferences.Religion},
		}},
	}
	_, err := coll.UpdateOne(ctx,
		bson.D{{Key: "user", Value: preferences.User}},
		update,
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("偏好更新失败: %w", err)
	}
	return nil
}
