package usecase_travel

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type LocationUsecase struct {
	spotRepo      travel_interface.SpotRepository
	foodPlaceRepo travel_interface.FoodPlaceRepository
	timeout       time.Duration
}

func NewLocationUsecase(
	spotRepo travel_interface.SpotRepository,
	foodPlaceRepo travel_interface.FoodPlaceRepository,
	timeout time.Duration,
) travel_interface.LocationUsecase {
	return &LocationUsecase{
		spotRepo:      spotRepo,
		foodPlaceRepo: foodPlaceRepo,
		timeout:       timeout,
	}
}

func (uc *LocationUsecase) GetAllSpots(ctx context.Context) ([]travel_models.Spot, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	spots, err := uc.spotRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取景点列表失败: %w", err)
	}
	return spots, nil
}

func (uc *LocationUsecase) GetAllFoodPlaces(ctx context.Context) ([]travel_models.FoodPlace, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	foodPlaces, err := uc.foodPlaceRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取餐饮店列表失败: %w", err)
	}
	return foodPlaces, nil
}

// SearchSpots 按名称搜索，大小写与变音符号不敏感（Boracay匹配borácay）
func (uc *LocationUsecase) SearchSpots(ctx context.Context, query string) ([]travel_models.Spot, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	spots, err := uc.spotRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取景点列表失败: %w", err)
	}

	folded := foldName(query)
	if folded == "" {
		return spots, nil
	}

	matched := make([]travel_models.Spot, 0, len(spots))
	for _, spot := range spots {
		if strings.Contains(foldName(spot.Name), folded) {
			matched = append(matched, spot)
		}
	}
	return matched, nil
}

// foldName 统一为小写并剥离变音符号
func foldName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}
