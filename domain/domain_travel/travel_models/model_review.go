package travel_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review 用户对地点的评价，rating取值1..5
// 留下评价同时视作该用户已访问过此地点
type Review struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Location        primitive.ObjectID `bson:"location" json:"location"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	Comment         string             `bson:"comment" json:"comment"`
	Rating          int                `bson:"rating" json:"rating"`
	DatetimeCreated time.Time          `bson:"datetime_created" json:"datetime_created"`
}

// LocationRating 聚合出的地点平均评分
type LocationRating struct {
	Location primitive.ObjectID `bson:"_id" json:"location"`
	Average  float64            `bson:"average" json:"average"`
	Count    int                `bson:"count" json:"count"`
}
