package route_travel

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/controller/controller_travel"
	"github.com/lakbay-travel/lakbay-backend/bootstrap"
	"github.com/lakbay-travel/lakbay-backend/domain"
	"github.com/lakbay-travel/lakbay-backend/mongo"
	"github.com/lakbay-travel/lakbay-backend/repository/repository_travel"
	"github.com/lakbay-travel/lakbay-backend/usecase/usecase_travel"
	"github.com/lakbay-travel/lakbay-backend/usecase/usecase_travel/scene_recommend"
)

func NewRecommendRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	// 初始化repository
	spotRepo := repository_travel.NewSpotRepository(db, domain.CollectionLocationSpot)
	foodPlaceRepo := repository_travel.NewFoodPlaceRepository(db, domain.CollectionLocationFoodPlace)
	modelItineraryRepo := repository_travel.NewModelItineraryRepository(db, domain.CollectionModelItinerary)
	itineraryRepo := repository_travel.NewItineraryRepository(db, domain.CollectionItinerary)
	reviewRepo := repository_travel.NewReviewRepository(db, domain.CollectionReview)
	preferencesRepo := repository_travel.NewPreferencesRepository(db, domain.CollectionPreferences)
	clickStore := repository_travel.NewClickStore(env.ClickStoreURL, time.Duration(env.ClickStoreTimeoutSec)*time.Second)

	// 初始化usecase
	engine := scene_recommend.NewEngine(scene_recommend.DefaultConfig())
	recommendUsecase := usecase_travel.NewRecommendUsecase(
		spotRepo, foodPlaceRepo, modelItineraryRepo,
		itineraryRepo, reviewRepo, preferencesRepo,
		clickStore, engine, timeout,
	)

	// 初始化controller
	recommendCtrl := controller_travel.NewRecommendController(recommendUsecase)
	clickCtrl := controller_travel.NewClickController(clickStore)

	// 注册路由
	recommendGroup := group.Group("/recommendations")
	{
		recommendGroup.GET("/homepage/", recommendCtrl.GetHomepage)
		recommendGroup.GET("/location/:location_id/", recommendCtrl.GetSimilarLocations)
		recommendGroup.POST("/content/", recommendCtrl.GetContent)
		recommendGroup.GET("/:day_id/nearby/spot/", recommendCtrl.GetNearbySpots)
		recommendGroup.GET("/:day_id/nearby/foodplace/", recommendCtrl.GetNearbyFoodPlaces)
	}

	group.POST("/clicks/:location_id/", clickCtrl.RecordClick)
}
