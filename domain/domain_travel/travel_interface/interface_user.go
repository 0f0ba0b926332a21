package travel_interface

import (
	"context"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *travel_models.User) error
	GetByEmail(ctx context.Context, email string) (*travel_models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*travel_models.User, error)
}

type PreferencesRepository interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*travel_models.Preferences, error)
	Upsert(ctx context.Context, preferences *travel_models.Preferences) error
}

// SignupRequest 注册请求体
type SignupRequest struct {
	Email     string `form:"email" binding:"required,email" json:"email"`
	Password  string `form:"password" binding:"required" json:"password"`
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
}

// LoginRequest 登录请求体
type LoginRequest struct {
	Email    string `form:"email" binding:"required,email" json:"email"`
	Password string `form:"password" binding:"required" json:"password"`
}

// AuthResponse 登录/注册成功后的令牌响应
type AuthResponse struct {
	AccessToken string `json:"access_token"`
}

type UserUsecase interface {
	Signup(ctx context.Context, request *SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	UpdatePreferences(ctx context.Context, preferences *travel_models.Preferences) error
}
