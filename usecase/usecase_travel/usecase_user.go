package usecase_travel

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"github.com/lakbay-travel/lakbay-backend/internal/tokenutil"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	userRepo        travel_interface.UserRepository
	preferencesRepo travel_interface.PreferencesRepository
	timeout         time.Duration
	jwtSecret       string
	jwtExpiryHours  int
}

func NewUserUsecase(
	userRepo travel_interface.UserRepository,
	preferencesRepo travel_interface.PreferencesRepository,
	timeout time.Duration,
	jwtSecret string,
	jwtExpiryHours int,
) travel_interface.UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		preferencesRepo: preferencesRepo,
		timeout:         timeout,
		jwtSecret:       jwtSecret,
		jwtExpiryHours:  jwtExpiryHours,
	}
}

func (uc *UserUsecase) Signup(ctx context.Context, request *travel_interface.SignupRequest) (*travel_interface.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if existing, _ := uc.userRepo.GetByEmail(ctx, request.Email); existing != nil {
		return nil, fmt.Errorf("该邮箱已被注册")
	}

	encrypted, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	user := &travel_models.User{
		Email:           request.Email,
		Password:        string(encrypted),
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		IsActive:        true,
		ActivationToken: uuid.NewString(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	// 新用户关联一份全零偏好，首页推荐在更新偏好前只靠非偏好信号
	if err := uc.preferencesRepo.Upsert(ctx, &travel_models.Preferences{User: user.ID}); err != nil {
		return nil, fmt.Errorf("初始化偏好失败: %w", err)
	}

	accessToken, err := tokenutil.CreateAccessToken(user, uc.jwtSecret, uc.jwtExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("生成令牌失败: %w", err)
	}

	return &travel_interface.AuthResponse{AccessToken: accessToken}, nil
}

func (uc *UserUsecase) Login(ctx context.Context, request *travel_interface.LoginRequest) (*travel_interface.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.userRepo.GetByEmail(ctx, request.Email)
	if err != nil || user == nil {
		return nil, fmt.Errorf("邮箱或密码错误")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, fmt.Errorf("邮箱或密码错误")
	}

	accessToken, err := tokenutil.CreateAccessToken(user, uc.jwtSecret, uc.jwtExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("生成令牌失败: %w", err)
	}

	return &travel_interface.AuthResponse{AccessToken: accessToken}, nil
}

func (uc *UserUsecase) UpdatePreferences(ctx context.Context, preferences *travel_models.Preferences) error {
	if preferences == nil || preferences.User.IsZero() {
		return fmt.Errorf("偏好记录必须关联用户")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.preferencesRepo.Upsert(ctx, preferences); err != nil {
		return fmt.Errorf("更新偏好失败: %w", err)
	}
	return nil
}
