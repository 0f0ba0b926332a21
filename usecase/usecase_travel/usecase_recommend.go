package usecase_travel

import (
	"context"
	"fmt"
	"time"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"github.com/lakbay-travel/lakbay-backend/usecase/usecase_travel/scene_recommend"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecommendUsecase 推荐服务：从仓储层物化候选池与用户上下文后交给评分引擎
// 引擎本身不做任何查询，点击遥测不可用时降级为空信号而不是失败
type RecommendUsecase struct {
	spotRepo           travel_interface.SpotRepository
	foodPlaceRepo      travel_interface.FoodPlaceRepository
	modelItineraryRepo travel_interface.ModelItineraryRepository
	itineraryRepo      travel_interface.ItineraryRepository
	reviewRepo         travel_interface.ReviewRepository
	preferencesRepo    travel_interface.PreferencesRepository
	clickStore         travel_interface.ClickStore
	engine             *scene_recommend.Engine
	timeout            time.Duration
}

func NewRecommendUsecase(
	spotRepo travel_interface.SpotRepository,
	foodPlaceRepo travel_interface.FoodPlaceRepository,
	modelItineraryRepo travel_interface.ModelItineraryRepository,
	itineraryRepo travel_interface.ItineraryRepository,
	reviewRepo travel_interface.ReviewRepository,
	preferencesRepo travel_interface.PreferencesRepository,
	clickStore travel_interface.ClickStore,
	engine *scene_recommend.Engine,
	timeout time.Duration,
) travel_interface.RecommendUsecase {
	return &RecommendUsecase{
		spotRepo:           spotRepo,
		foodPlaceRepo:      foodPlaceRepo,
		modelItineraryRepo: modelItineraryRepo,
		itineraryRepo:      itineraryRepo,
		reviewRepo:         reviewRepo,
		preferencesRepo:    preferencesRepo,
		clickStore:         clickStore,
		engine:             engine,
		timeout:            timeout,
	}
}

func (uc *RecommendUsecase) GetHomepageRecommendations(ctx context.Context, userID string) ([]string, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("无效的用户id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.buildUserContext(ctx, uid, visitedFromCompletedAndReviews)
	if err != nil {
		return nil, err
	}

	pool, err := uc.spotCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取候选景点失败: %w", err)
	}

	req := scene_recommend.Request{Mode: scene_recommend.ModeHomepage}
	return uc.engine.RankIDs(req, nil, pool, user), nil
}

func (uc *RecommendUsecase) GetLocationRecommendations(ctx context.Context, userID, locationID string) ([]string, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("无效的用户id: %w", err)
	}
	lid, err := primitive.ObjectIDFromHex(locationID)
	if err != nil {
		return nil, fmt.Errorf("无效的地点id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.buildUserContext(ctx, uid, visitedFromCompleted)
	if err != nil {
		return nil, err
	}

	pool, err := uc.spotCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取候选景点失败: %w", err)
	}
	origin := findCandidate(pool, lid.Hex())
	if origin == nil {
		originSpot, err := uc.spotRepo.GetByID(ctx, lid)
		if err != nil {
			return nil, fmt.Errorf("锚点景点查询失败: %w", err)
		}
		if originSpot == nil {
			return nil, fmt.Errorf("锚点景点不存在: %s", lid.Hex())
		}
		converted := spotToCandidate(originSpot, nil)
		origin = &converted
	}

	req := scene_recommend.Request{
		Mode:     scene_recommend.ModeLocationDetail,
		OriginID: lid.Hex(),
	}
	return uc.engine.RankIDs(req, origin, pool, user), nil
}

func (uc *RecommendUsecase) GetContentRecommendations(ctx context.Context, userID string, budget float64) ([]string, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("无效的用户id: %w", err)
	}
	if budget < 0 {
		return nil, fmt.Errorf("budget参数不能为负数")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.buildUserContext(ctx, uid, visitedFromCompletedAndReviews)
	if err != nil {
		return nil, err
	}

	pool, err := uc.modelItineraryCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取候选行程模板失败: %w", err)
	}

	req := scene_recommend.Request{
		Mode:   scene_recommend.ModeItineraryContent,
		Budget: budget,
	}
	return uc.engine.RankIDs(req, nil, pool, user), nil
}

func (uc *RecommendUsecase) GetSpotChainRecommendations(ctx context.Context, userID, dayID string) ([]string, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("无效的用户id: %w", err)
	}
	did, err := primitive.ObjectIDFromHex(dayID)
	if err != nil {
		return nil, fmt.Errorf("无效的day id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	dayLocations, err := uc.itineraryRepo.GetDayLocationIDs(ctx, did)
	if err != nil {
		return nil, fmt.Errorf("获取当天行程失败: %w", err)
	}
	if len(dayLocations) == 0 {
		return nil, fmt.Errorf("当天行程没有地点，无法确定锚点")
	}
	originID := dayLocations[len(dayLocations)-1]

	// 链式推荐把用户行程内的全部地点视作已访问，不限完成状态
	user, err := uc.buildUserContext(ctx, uid, visitedFromAllItineraries)
	if err != nil {
		return nil, err
	}

	pool, err := uc.spotCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取候选景点失败: %w", err)
	}
	origin := findCandidate(pool, originID.Hex())
	if origin == nil {
		originSpot, err := uc.spotRepo.GetByID(ctx, originID)
		if err != nil {
			return nil, fmt.Errorf("锚点景点查询失败: %w", err)
		}
		if originSpot == nil {
			return nil, fmt.Errorf("锚点景点不存在: %s", originID.Hex())
		}
		converted := spotToCandidate(originSpot, nil)
		origin = &converted
	}

	req := scene_recommend.Request{
		Mode:     scene_recommend.ModeSpotChain,
		OriginID: originID.Hex(),
	}
	return uc.engine.RankIDs(req, origin, pool, user), nil
}

func (uc *RecommendUsecase) GetFoodChainRecommendations(ctx context.Context, userID, dayID string) ([]string, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("无效的用户id: %w", err)
	}
	did, err := primitive.ObjectIDFromHex(dayID)
	if err != nil {
		return nil, fmt.Errorf("无效的day id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	dayLocations, err := uc.itineraryRepo.GetDayLocationIDs(ctx, did)
	if err != nil {
		return nil, fmt.Errorf("获取当天行程失败: %w", err)
	}
	if len(dayLocations) == 0 {
		return nil, fmt.Errorf("当天行程没有地点，无法确定锚点")
	}
	originID := dayLocations[len(dayLocations)-1]

	// 餐饮链只把当天已安排的地点当作已访问
	visited := make(map[string]struct{}, len(dayLocations))
	for _, id := range dayLocations {
		visited[id.Hex()] = struct{}{}
	}
	user := scene_recommend.UserContext{
		Visited:               visited,
		VisitedTagCounts:      map[string]int{},
		VisitedActivityCounts: map[string]int{},
		Clicks:                uc.userClicks(ctx, uid),
	}

	pool, err := uc.foodPlaceCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取候选餐饮店失败: %w", err)
	}

	origin, err := uc.anchorCandidate(ctx, originID)
	if err != nil {
		return nil, err
	}

	req := scene_recommend.Request{
		Mode:     scene_recommend.ModeFoodChain,
		OriginID: originID.Hex(),
	}
	return uc.engine.RankIDs(req, origin, pool, user), nil
}

// ============== 用户上下文构建 ==============

type visitedPolicy int

const (
	// visitedFromCompleted 仅统计已完成天数内的地点
	visitedFromCompleted visitedPolicy = iota
	// visitedFromCompletedAndReviews 已完成天数加上评价过的地点
	visitedFromCompletedAndReviews
	// visitedFromAllItineraries 行程内全部地点，不限完成状态
	visitedFromAllItineraries
)

// buildUserContext 从仓储层推导偏好向量、已访问集合、标签/活动频次与点击数
// 偏好记录缺失时使用全零向量（仅靠非偏好信号排序），点击查询失败降级为空map
func (uc *RecommendUsecase) buildUserContext(ctx context.Context, userID primitive.ObjectID, policy visitedPolicy) (scene_recommend.UserContext, error) {
	user := scene_recommend.UserContext{
		Visited:               map[string]struct{}{},
		VisitedTagCounts:      map[string]int{},
		VisitedActivityCounts: map[string]int{},
		Clicks:                uc.userClicks(ctx, userID),
	}

	if preferences, err := uc.preferencesRepo.GetByUser(ctx, userID); err == nil && preferences != nil {
		user.Preferences = preferences.Vector()
	}

	var visitedIDs []primitive.ObjectID
	var err error
	switch policy {
	case visitedFromAllItineraries:
		visitedIDs, err = uc.itineraryRepo.GetAllLocationIDs(ctx, userID)
	default:
		visitedIDs, err = uc.itineraryRepo.GetCompletedLocationIDs(ctx, userID)
	}
	if err != nil {
		return user, fmt.Errorf("获取访问历史失败: %w", err)
	}

	if policy == visitedFromCompletedAndReviews {
		reviewed, err := uc.reviewRepo.GetLocationIDsByUser(ctx, userID)
		if err != nil {
			return user, fmt.Errorf("获取评价历史失败: %w", err)
		}
		visitedIDs = append(visitedIDs, reviewed...)
	}

	unique := make([]primitive.ObjectID, 0, len(visitedIDs))
	for _, id := range visitedIDs {
		hex := id.Hex()
		if _, ok := user.Visited[hex]; ok {
			continue
		}
		user.Visited[hex] = struct{}{}
		unique = append(unique, id)
	}

	// 已访问地点中的景点贡献标签与活动频次
	if len(unique) > 0 {
		visitedSpots, err := uc.spotRepo.GetByIDs(ctx, unique)
		if err != nil {
			return user, fmt.Errorf("获取已访问景点失败: %w", err)
		}
		for _, spot := range visitedSpots {
			for _, tag := range spot.Tags {
				user.VisitedTagCounts[tag]++
			}
			for _, activity := range spot.Activities {
				user.VisitedActivityCounts[activity]++
			}
		}
	}

	return user, nil
}

// userClicks 查询点击遥测，任何失败都降级为空信号
func (uc *RecommendUsecase) userClicks(ctx context.Context, userID primitive.ObjectID) map[string]int {
	clicks, err := uc.clickStore.GetUserClicks(ctx, userID.Hex())
	if err != nil || clicks == nil {
		return map[string]int{}
	}
	return clicks
}

// ============== 候选池物化 ==============

func (uc *RecommendUsecase) spotCandidates(ctx context.Context) ([]scene_recommend.Candidate, error) {
	spots, err := uc.spotRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ratings, err := uc.reviewRepo.AverageRatings(ctx)
	if err != nil {
		return nil, err
	}

	pool := make([]scene_recommend.Candidate, 0, len(spots))
	for i := range spots {
		pool = append(pool, spotToCandidate(&spots[i], ratings))
	}
	return pool, nil
}

func (uc *RecommendUsecase) foodPlaceCandidates(ctx context.Context) ([]scene_recommend.Candidate, error) {
	foodPlaces, err := uc.foodPlaceRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ratings, err := uc.reviewRepo.AverageRatings(ctx)
	if err != nil {
		return nil, err
	}

	pool := make([]scene_recommend.Candidate, 0, len(foodPlaces))
	for i := range foodPlaces {
		f := &foodPlaces[i]
		pool = append(pool, scene_recommend.Candidate{
			ID:             f.ID.Hex(),
			Tags:           f.Tags,
			Latitude:       f.Latitude,
			Longitude:      f.Longitude,
			HasCoordinates: true,
			Rating:         ratings[f.ID],
			CostMin:        f.MinCost(),
			CostMax:        f.MaxCost(),
		})
	}
	return pool, nil
}

// modelItineraryCandidates 物化行程模板：标签并集、活动频次与成员景点的花费合计
func (uc *RecommendUsecase) modelItineraryCandidates(ctx context.Context) ([]scene_recommend.Candidate, error) {
	models, err := uc.modelItineraryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	pool := make([]scene_recommend.Candidate, 0, len(models))
	for _, model := range models {
		spots, err := uc.spotRepo.GetByIDs(ctx, model.Locations)
		if err != nil {
			return nil, err
		}

		tagSet := make(map[string]struct{})
		activities := make(map[string]int)
		locationIDs := make([]string, 0, len(model.Locations))
		var minCost, maxCost float64

		for _, id := range model.Locations {
			locationIDs = append(locationIDs, id.Hex())
		}
		for i := range spots {
			spot := &spots[i]
			for _, tag := range spot.Tags {
				tagSet[tag] = struct{}{}
			}
			for _, activity := range spot.Activities {
				activities[activity]++
			}
			minCost += spot.MinCost()
			maxCost += spot.MaxCost()
		}

		tags := make([]string, 0, len(tagSet))
		for tag := range tagSet {
			tags = append(tags, tag)
		}

		pool = append(pool, scene_recommend.Candidate{
			ID:          model.ID.Hex(),
			Tags:        tags,
			Activities:  activities,
			CostMin:     minCost,
			CostMax:     maxCost,
			LocationIDs: locationIDs,
		})
	}
	return pool, nil
}

// anchorCandidate 解析链式推荐的锚点：当天最后一项可能是景点也可能是餐饮店
func (uc *RecommendUsecase) anchorCandidate(ctx context.Context, id primitive.ObjectID) (*scene_recommend.Candidate, error) {
	if foodPlace, err := uc.foodPlaceRepo.GetByID(ctx, id); err == nil && foodPlace != nil {
		return &scene_recommend.Candidate{
			ID:             foodPlace.ID.Hex(),
			Tags:           foodPlace.Tags,
			Latitude:       foodPlace.Latitude,
			Longitude:      foodPlace.Longitude,
			HasCoordinates: true,
		}, nil
	}

	spot, err := uc.spotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("锚点地点查询失败: %w", err)
	}
	if spot == nil {
		return nil, fmt.Errorf("锚点地点不存在: %s", id.Hex())
	}
	converted := spotToCandidate(spot, nil)
	return &converted, nil
}

func spotToCandidate(spot *travel_models.Spot, ratings map[primitive.ObjectID]float64) scene_recommend.Candidate {
	activities := make(map[string]int, len(spot.Activities))
	for _, activity := range spot.Activities {
		activities[activity]++
	}

	return scene_recommend.Candidate{
		ID:             spot.ID.Hex(),
		Tags:           spot.Tags,
		Activities:     activities,
		Latitude:       spot.Latitude,
		Longitude:      spot.Longitude,
		HasCoordinates: true,
		Rating:         ratings[spot.ID],
		CostMin:        spot.MinCost(),
		CostMax:        spot.MaxCost(),
	}
}

func findCandidate(pool []scene_recommend.Candidate, id string) *scene_recommend.Candidate {
	for i := range pool {
		if pool[i].ID == id {
			return &pool[i]
		}
	}
	return nil
}
