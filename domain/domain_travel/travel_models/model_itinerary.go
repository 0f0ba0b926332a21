package travel_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Itinerary 用户行程
type Itinerary struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Day 行程中的一天，completed标记该天已完成
type Day struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Itinerary primitive.ObjectID `bson:"itinerary" json:"itinerary"`
	Date      time.Time          `bson:"date" json:"date"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	Completed bool               `bson:"completed" json:"completed"`
}

// ItineraryItem 一天内的一个地点安排，order决定访问顺序
type ItineraryItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Day      primitive.ObjectID `bson:"day" json:"day"`
	Location primitive.ObjectID `bson:"location" json:"location"`
	Order    int                `bson:"order" json:"order"`
}

// ModelItinerary 预打包行程模板，locations按顺序存放景点id
type ModelItinerary struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Locations []primitive.ObjectID `bson:"locations" json:"locations"`
}
