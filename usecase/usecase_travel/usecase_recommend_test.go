package usecase_travel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"github.com/lakbay-travel/lakbay-backend/usecase/usecase_travel/scene_recommend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSpotRepo struct {
	spots []travel_models.Spot
}

func (f *fakeSpotRepo) GetAll(_ context.Context) ([]travel_models.Spot, error) {
	return f.spots, nil
}

func (f *fakeSpotRepo) GetByID(_ context.Context, id primitive.ObjectID) (*travel_models.Spot, error) {
	for i := range f.spots {
		if f.spots[i].ID == id {
			return &f.spots[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSpotRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]travel_models.Spot, error) {
	var result []travel_models.Spot
	for i := range f.spots {
		for _, id := range ids {
			if f.spots[i].ID == id {
				result = append(result, f.spots[i])
				break
			}
		}
	}
	return result, nil
}

func (f *fakeSpotRepo) Create(_ context.Context, spot *travel_models.Spot) error {
	f.spots = append(f.spots, *spot)
	return nil
}

type fakeFoodPlaceRepo struct {
	places []travel_models.FoodPlace
}

func (f *fakeFoodPlaceRepo) GetAll(_ context.Context) ([]travel_models.FoodPlace, error) {
	return f.places, nil
}

func (f *fakeFoodPlaceRepo) GetByID(_ context.Context, id primitive.ObjectID) (*travel_models.FoodPlace, error) {
	for i := range f.places {
		if f.places[i].ID == id {
			return &f.places[i], nil
		}
	}
	return nil, nil
}

func (f *fakeFoodPlaceRepo) Create(_ context.Context, place *travel_models.FoodPlace) error {
	f.places = append(f.places, *place)
	return nil
}

type fakeModelItineraryRepo struct {
	models []travel_models.ModelItinerary
}

func (f *fakeModelItineraryRepo) GetAll(_ context.Context) ([]travel_models.ModelItinerary, error) {
	return f.models, nil
}

func (f *fakeModelItineraryRepo) GetByID(_ context.Context, id primitive.ObjectID) (*travel_models.ModelItinerary, error) {
	for i := range f.models {
		if f.models[i].ID == id {
			return &f.models[i], nil
		}
	}
	return nil, nil
}

type fakeItineraryRepo struct {
	completed    []primitive.ObjectID
	all          []primitive.ObjectID
	dayLocations map[primitive.ObjectID][]primitive.ObjectID
	completedDay map[primitive.ObjectID]bool
}

func (f *fakeItineraryRepo) GetCompletedLocationIDs(_ context.Context, _ primitive.ObjectID) ([]primitive.ObjectID, error) {
	return f.completed, nil
}

func (f *fakeItineraryRepo) GetAllLocationIDs(_ context.Context, _ primitive.ObjectID) ([]primitive.ObjectID, error) {
	return f.all, nil
}

func (f *fakeItineraryRepo) GetDayLocationIDs(_ context.Context, dayID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return f.dayLocations[dayID], nil
}

func (f *fakeItineraryRepo) IsDayCompleted(_ context.Context, dayID primitive.ObjectID) (bool, error) {
	return f.completedDay[dayID], nil
}

type fakeReviewRepo struct {
	ratings  map[primitive.ObjectID]float64
	reviewed []primitive.ObjectID
}

func (f *fakeReviewRepo) Create(_ context.Context, _ *travel_models.Review) error {
	return nil
}

func (f *fakeReviewRepo) GetByLocation(_ context.Context, _ primitive.ObjectID) ([]travel_models.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepo) AverageRatings(_ context.Context) (map[primitive.ObjectID]float64, error) {
	if f.ratings == nil {
		return map[primitive.ObjectID]float64{}, nil
	}
	return f.ratings, nil
}

func (f *fakeReviewRepo) GetLocationIDsByUser(_ context.Context, _ primitive.ObjectID) ([]primitive.ObjectID, error) {
	return f.reviewed, nil
}

type fakePreferencesRepo struct {
	preferences *travel_models.Preferences
}

func (f *fakePreferencesRepo) GetByUser(_ context.Context, _ primitive.ObjectID) (*travel_models.Preferences, error) {
	return f.preferences, nil
}

func (f *fakePreferencesRepo) Upsert(_ context.Context, _ *travel_models.Preferences) error {
	return nil
}

type fakeClickStore struct {
	clicks map[string]int
	err    error
}

func (f *fakeClickStore) GetUserClicks(_ context.Context, _ string) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.clicks, nil
}

func (f *fakeClickStore) RecordClick(_ context.Context, _, _ string) error {
	return f.err
}

func newSpot(id primitive.ObjectID, name string, tags []string, lat, lon float64) travel_models.Spot {
	return travel_models.Spot{
		Location: travel_models.Location{
			ID:           id,
			Name:         name,
			Latitude:     lat,
			Longitude:    lon,
			LocationType: travel_models.LocationTypeSpot,
		},
		Tags: tags,
	}
}

func newTestUsecase(
	spotRepo *fakeSpotRepo,
	foodRepo *fakeFoodPlaceRepo,
	modelRepo *fakeModelItineraryRepo,
	itineraryRepo *fakeItineraryRepo,
	reviewRepo *fakeReviewRepo,
	preferencesRepo *fakePreferencesRepo,
	clickStore *fakeClickStore,
) *RecommendUsecase {
	engine := scene_recommend.NewEngine(scene_recommend.DefaultConfig())
	uc := NewRecommendUsecase(
		spotRepo, foodRepo, modelRepo,
		itineraryRepo, reviewRepo, preferencesRepo,
		clickStore, engine, 5*time.Second,
	)
	return uc.(*RecommendUsecase)
}

func TestGetHomepageRecommendations_PreferenceDriven(t *testing.T) {
	userID := primitive.NewObjectID()
	nature := primitive.NewObjectID()
	history := primitive.NewObjectID()

	spotRepo := &fakeSpotRepo{spots: []travel_models.Spot{
		newSpot(nature, "森林公园", []string{"Nature"}, 14.0, 121.0),
		newSpot(history, "古城墙", []string{"History"}, 14.1, 121.1),
	}}
	uc := newTestUsecase(
		spotRepo,
		&fakeFoodPlaceRepo{},
		&fakeModelItineraryRepo{},
		&fakeItineraryRepo{},
		&fakeReviewRepo{},
		&fakePreferencesRepo{preferences: &travel_models.Preferences{User: userID, Nature: true}},
		&fakeClickStore{},
	)

	ids, err := uc.GetHomepageRecommendations(context.Background(), userID.Hex())
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, nature.Hex(), ids[0])
}

func TestGetHomepageRecommendations_InvalidUserID(t *testing.T) {
	uc := newTestUsecase(
		&fakeSpotRepo{}, &fakeFoodPlaceRepo{}, &fakeModelItineraryRepo{},
		&fakeItineraryRepo{}, &fakeReviewRepo{}, &fakePreferencesRepo{}, &fakeClickStore{},
	)

	_, err := uc.GetHomepageRecommendations(context.Background(), "not-an-object-id")
	assert.Error(t, err)
}

func TestGetHomepageRecommendations_ClickStoreFailureDegrades(t *testing.T) {
	userID := primitive.NewObjectID()
	spot := primitive.NewObjectID()

	uc := newTestUsecase(
		&fakeSpotRepo{spots: []travel_models.Spot{
			newSpot(spot, "瀑布", []string{"Nature"}, 14.0, 121.0),
		}},
		&fakeFoodPlaceRepo{},
		&fakeModelItineraryRepo{},
		&fakeItineraryRepo{},
		&fakeReviewRepo{},
		&fakePreferencesRepo{},
		&fakeClickStore{err: errors.New("telemetry down")},
	)

	ids, err := uc.GetHomepageRecommendations(context.Background(), userID.Hex())
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestGetHomepageRecommendations_VisitedExcluded(t *testing.T) {
	userID := primitive.NewObjectID()
	visited := primitive.NewObjectID()
	fresh := primitive.NewObjectID()

	uc := newTestUsecase(
		&fakeSpotRepo{spots: []travel_models.Spot{
			newSpot(visited, "老地方", []string{"Culture"}, 14.0, 121.0),
			newSpot(fresh, "新地方", []string{"Culture"}, 14.2, 121.2),
		}},
		&fakeFoodPlaceRepo{},
		&fakeModelItineraryRepo{},
		&fakeItineraryRepo{completed: []primitive.ObjectID{visited}},
		&fakeReviewRepo{},
		&fakePreferencesRepo{},
		&fakeClickStore{},
	)

	ids, err := uc.GetHomepageRecommendations(context.Background(), userID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{fresh.Hex()}, ids)
}

func TestGetHomepageRecommendations_ReviewedCountsAsVisited(t *testing.T) {
	userID := primitive.NewObjectID()
	reviewed := primitive.NewObjectID()
	fresh := primitive.NewObjectID()

	uc := newTestUsecase(
		&fakeSpotRepo{spots: []travel_models.Spot{
			newSpot(reviewed, "评论过的", []string{"Art"}, 14.0, 121.0),
			newSpot(fresh, "没去过的", []string{"Art"}, 14.2, 121.2),
		}},
		&fakeFoodPlaceRepo{},
		&fakeModelItineraryRepo{},
		&fakeItineraryRepo{},
		&fakeReviewRepo{reviewed: []primitive.ObjectID{reviewed}},
		&fakePreferencesRepo{},
		&fakeClickStore{},
	)

	ids, err := uc.GetHomepageRecommendations(context.Background(), userID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{fresh.Hex()}, ids)
}

func TestGetLocationRecommendations_AnchorNotFound(t *testing.T) {
	userID := primitive.NewObjectID()

	uc := newTestUsecase(
		&fakeSpotRepo{}, &fakeFoodPlaceRepo{}, &fakeModelItineraryRepo{},
		&fakeItineraryRepo{}, &fakeReviewRepo{}, &fakePreferencesRepo{}, &fakeClickStore{},
	)

	_, err := uc.GetLocationRecommendations(context.Background(), userID.Hex(), primitive.NewObjectID().Hex())
	assert.Error(t, err)
}

func TestGetContentRecommendations_NegativeBudget(t *testing.T) {
	uc := newTestUsecase(
		&fakeSpotRepo{}, &fakeFoodPlaceRepo{}, &fakeModelItineraryRepo{},
		&fakeItineraryRepo{}, &fakeReviewRepo{}, &fakePreferencesRepo{}, &fakeClickStore{},
	)

	_, err := uc.GetContentRecommendations(context.Background(), primitive.NewObjectID().Hex(), -100)
	assert.Error(t, err)
}

func TestGetContentRecommendations_BudgetFiltersTemplates(t *testing.T) {
	userID := primitive.NewObjectID()
	cheapSpot := primitive.NewObjectID()
	expensiveSpot := primitive.NewObjectID()
	cheapModel := primitive.NewObjectID()
	expensiveModel := primitive.NewObjectID()

	cheap := newSpot(cheapSpot, "便宜景点", []string{"Nature"}, 14.0, 121.0)
	expensive := newSpot(expensiveSpot, "昂贵景点", []string{"Nature"}, 14.1, 121.1)
	expensive.Fees = []travel_models.FeeType{
		{Name: "入场费", IsRequired: true, AudienceTypes: []travel_models.AudienceType{
			{Name: "普通", Price: 2000},
		}},
	}

	uc := newTestUsecase(
		&fakeSpotRepo{spots: []travel_models.Spot{cheap, expensive}},
		&fakeFoodPlaceRepo{},
		&fakeModelItineraryRepo{models: []travel_models.ModelItinerary{
			{ID: cheapModel, Locations: []primitive.ObjectID{cheapSpot}},
			{ID: expensiveModel, Locations: []primitive.ObjectID{expensiveSpot}},
		}},
		&fakeItineraryRepo{},
		&fakeReviewRepo{},
		&fakePreferencesRepo{},
		&fakeClickStore{},
	)

	ids, err := uc.GetContentRecommendations(context.Background(), userID.Hex(), 500)
	require.NoError(t, err)
	assert.Equal(t, []string{cheapModel.Hex()}, ids)
}

func TestGetSpotChainRecommendations_EmptyDay(t *testing.T) {
	uc := newTestUsecase(
		&fakeSpotRepo{}, &fakeFoodPlaceRepo{}, &fakeModelItineraryRepo{},
		&fakeItineraryRepo{dayLocations: map[primitive.ObjectID][]primitive.ObjectID{}},
		&fakeReviewRepo{}, &fakePreferencesRepo{}, &fakeClickStore{},
	)

	_, err := uc.GetSpotChainRecommendations(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	assert.Error(t, err)
}

func TestGetSpotChainRecommendations_NearbyFirst(t *testing.T) {
	userID := primitive.NewObjectID()
	dayID := primitive.NewObjectID()
	anchor := primitive.NewObjectID()
	near := primitive.NewObjectID()
	far := primitive.NewObjectID()

	uc := newTestUsecase(
		&fakeSpotRepo{spots: []travel_models.Spot{
			newSpot(anchor, "锚点", []string{"Culture"}, 14.5995, 120.9842),
			newSpot(near, "近处", []string{"Culture"}, 14.6000, 120.9850),
			newSpot(far, "远处", []string{"Culture"}, 14.6300, 121.0200),
		}},
		&fakeFoodPlaceRepo{},
		&fakeModelItineraryRepo{},
		&fakeItineraryRepo{
			dayLocations: map[primitive.ObjectID][]primitive.ObjectID{
				dayID: {anchor},
			},
			all: []primitive.ObjectID{anchor},
		},
		&fakeReviewRepo{},
		&fakePreferencesRepo{},
		&fakeClickStore{},
	)

	ids, err := uc.GetSpotChainRecommendations(context.Background(), userID.Hex(), dayID.Hex())
	require.NoError(t, err)
	require.NotEmpty(t, ids)
	assert.Equal(t, near.Hex(), ids[0])
	assert.NotContains(t, ids, anchor.Hex())
}

func TestGetFoodChainRecommendations_NearbyFoodPlaces(t *testing.T) {
	userID := primitive.NewObjectID()
	dayID := primitive.NewObjectID()
	anchor := primitive.NewObjectID()
	nearFood := primitive.NewObjectID()
	farFood := primitive.NewObjectID()

	uc := newTestUsecase(
		&fakeSpotRepo{spots: []travel_models.Spot{
			newSpot(anchor, "观景台", []string{"Nature"}, 14.5995, 120.9842),
		}},
		&fakeFoodPlaceRepo{places: []travel_models.FoodPlace{
			{
				Location: travel_models.Location{
					ID: nearFood, Name: "街角小馆",
					Latitude: 14.6000, Longitude: 120.9850,
					LocationType: travel_models.LocationTypeFoodPlace,
				},
			},
			{
				Location: travel_models.Location{
					ID: farFood, Name: "郊外餐厅",
					Latitude: 14.6250, Longitude: 121.0150,
					LocationType: travel_models.LocationTypeFoodPlace,
				},
			},
		}},
		&fakeModelItineraryRepo{},
		&fakeItineraryRepo{
			dayLocations: map[primitive.ObjectID][]primitive.ObjectID{
				dayID: {anchor},
			},
		},
		&fakeReviewRepo{},
		&fakePreferencesRepo{},
		&fakeClickStore{},
	)

	ids, err := uc.GetFoodChainRecommendations(context.Background(), userID.Hex(), dayID.Hex())
	require.NoError(t, err)
	require.NotEmpty(t, ids)
	assert.Equal(t, nearFood.Hex(), ids[0])
}

func TestBuildUserContext_MissingPreferences(t *testing.T) {
	userID := primitive.NewObjectID()

	uc := newTestUsecase(
		&fakeSpotRepo{}, &fakeFoodPlaceRepo{}, &fakeModelItineraryRepo{},
		&fakeItineraryRepo{}, &fakeReviewRepo{}, &fakePreferencesRepo{preferences: nil}, &fakeClickStore{},
	)

	user, err := uc.buildUserContext(context.Background(), userID, visitedFromCompletedAndReviews)
	require.NoError(t, err)
	assert.Equal(t, [7]int{}, user.Preferences)
	assert.Empty(t, user.Visited)
}

func TestBuildUserContext_VisitedSpotTagCounts(t *testing.T) {
	userID := primitive.NewObjectID()
	visited := primitive.NewObjectID()

	spot := newSpot(visited, "博物馆", []string{"History", "Art"}, 14.0, 121.0)
	spot.Activities = []string{"Guided Tour"}

	uc := newTestUsecase(
		&fakeSpotRepo{spots: []travel_models.Spot{spot}},
		&fakeFoodPlaceRepo{},
		&fakeModelItineraryRepo{},
		&fakeItineraryRepo{completed: []primitive.ObjectID{visited}},
		&fakeReviewRepo{},
		&fakePreferencesRepo{},
		&fakeClickStore{},
	)

	user, err := uc.buildUserContext(context.Background(), userID, visitedFromCompleted)
	require.NoError(t, err)
	assert.Equal(t, 1, user.VisitedTagCounts["History"])
	assert.Equal(t, 1, user.VisitedTagCounts["Art"])
	assert.Equal(t, 1, user.VisitedActivityCounts["Guided Tour"])
}
