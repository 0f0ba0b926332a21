package travel_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 账户信息
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"`
	FirstName       string             `bson:"first_name" json:"first_name"`
	LastName        string             `bson:"last_name" json:"last_name"`
	IsActive        bool               `bson:"is_active" json:"is_active"`
	ActivationToken string             `bson:"activation_token,omitempty" json:"-"`
}

// Preferences 用户类别偏好，7个布尔值
// 顺序固定：Activity, Art, Culture, Entertainment, History, Nature, Religion
// 该顺序与推荐引擎的偏好向量逐位对应，不可调整
type Preferences struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	Activity      bool               `bson:"activity" json:"activity"`
	Art           bool               `bson:"art" json:"art"`
	Culture       bool               `bson:"culture" json:"culture"`
	Entertainment bool               `bson:"entertainment" json:"entertainment"`
	History       bool               `bson:"history" json:"history"`
	Nature        bool               `bson:"nature" json:"nature"`
	Religion      bool               `bson:"religion" json:"religion"`
}

// Vector 输出逐位偏好向量
func (p *Preferences) Vector() [7]int {
	var v [7]int
	flags := [7]bool{p.Activity, p.Art, p.Culture, p.Entertainment, p.History, p.Nature, p.Religion}
	for i, f := range flags {
		if f {
			v[i] = 1
		}
	}
	return v
}
