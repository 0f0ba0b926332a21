package route_travel

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/controller/controller_travel"
	"github.com/lakbay-travel/lakbay-backend/domain"
	"github.com/lakbay-travel/lakbay-backend/mongo"
	"github.com/lakbay-travel/lakbay-backend/repository/repository_travel"
	"github.com/lakbay-travel/lakbay-backend/usecase/usecase_travel"
)

func NewLocationRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	spotRepo := repository_travel.NewSpotRepository(db, domain.CollectionLocationSpot)
	foodPlaceRepo := repository_travel.NewFoodPlaceRepository(db, domain.CollectionLocationFoodPlace)
	reviewRepo := repository_travel.NewReviewRepository(db, domain.CollectionReview)

	locationUsecase := usecase_travel.NewLocationUsecase(spotRepo, foodPlaceRepo, timeout)
	reviewUsecase := usecase_travel.NewReviewUsecase(reviewRepo, timeout)

	locationCtrl := controller_travel.NewLocationController(locationUsecase)
	reviewCtrl := controller_travel.NewReviewController(reviewUsecase)

	locationGroup := group.Group("/location")
	{
		locationGroup.GET("/", locationCtrl.GetSpots)
		locationGroup.GET("/foodplace/", locationCtrl.GetFoodPlaces)
		locationGroup.GET("/search", locationCtrl.SearchSpots)

		locationGroup.GET("/:location_id/reviews/", reviewCtrl.GetLocationReviews)
		locationGroup.POST("/:location_id/reviews/create/", reviewCtrl.CreateReview)
	}
}
