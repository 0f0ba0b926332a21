package usecase_travel

import (
	"context"
	"fmt"
	"time"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewUsecase struct {
	reviewRepo travel_interface.ReviewRepository
	timeout    time.Duration
}

func NewReviewUsecase(reviewRepo travel_interface.ReviewRepository, timeout time.Duration) travel_interface.ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo: reviewRepo,
		timeout:    timeout,
	}
}

func (uc *ReviewUsecase) CreateReview(ctx context.Context, review *travel_models.Review) error {
	if review == nil {
		return fmt.Errorf("评价内容不能为空")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("rating必须在1到5之间")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	review.DatetimeCreated = time.Now()
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return fmt.Errorf("创建评价失败: %w", err)
	}
	return nil
}

func (uc *ReviewUsecase) GetLocationReviews(ctx context.Context, locationID string) ([]travel_models.Review, error) {
	lid, err := primitive.ObjectIDFromHex(locationID)
	if err != nil {
		return nil, fmt.Errorf("无效的地点id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	reviews, err := uc.reviewRepo.GetByLocation(ctx, lid)
	if err != nil {
		return nil, fmt.Errorf("获取评价列表失败: %w", err)
	}
	return reviews, nil
}
