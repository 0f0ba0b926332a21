package controller_travel

import (
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/controller"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
)

// 行程内容推荐取前12名后随机抽3个返回，保证多次请求有新鲜感
const contentSampleSize = 3

type RecommendController struct {
	uc travel_interface.RecommendUsecase
}

func NewRecommendController(uc travel_interface.RecommendUsecase) *RecommendController {
	return &RecommendController{uc: uc}
}

// GetHomepage GET /recommendations/homepage/
func (ctrl *RecommendController) GetHomepage(c *gin.Context) {
	userID := c.GetString("x-user-id")

	ids, err := ctrl.uc.GetHomepageRecommendations(c.Request.Context(), userID)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "RECOMMEND_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(c, "recommendations", ids, len(ids))
}

// GetSimilarLocations GET /recommendations/location/:location_id/
func (ctrl *RecommendController) GetSimilarLocations(c *gin.Context) {
	userID := c.GetString("x-user-id")
	locationID := c.Param("location_id")

	ids, err := ctrl.uc.GetLocationRecommendations(c.Request.Context(), userID, locationID)
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "RECOMMEND_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(c, "recommendations", ids, len(ids))
}

// GetContent POST /recommendations/content/
func (ctrl *RecommendController) GetContent(c *gin.Context) {
	var req struct {
		Budget float64 `form:"budget" binding:"required,gt=0" json:"budget"`
	}
	if err := c.ShouldBind(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	userID := c.GetString("x-user-id")
	ids, err := ctrl.uc.GetContentRecommendations(c.Request.Context(), userID, req.Budget)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "RECOMMEND_ERROR", err.Error())
		return
	}

	sampled := sampleIDs(ids, contentSampleSize)
	controller.SuccessResponse(c, "recommendations", sampled, len(sampled))
}

// GetNearbySpots GET /recommendations/:day_id/nearby/spot/
func (ctrl *RecommendController) GetNearbySpots(c *gin.Context) {
	userID := c.GetString("x-user-id")
	dayID := c.Param("day_id")

	ids, err := ctrl.uc.GetSpotChainRecommendations(c.Request.Context(), userID, dayID)
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "RECOMMEND_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(c, "recommendations", ids, len(ids))
}

// GetNearbyFoodPlaces GET /recommendations/:day_id/nearby/foodplace/
func (ctrl *RecommendController) GetNearbyFoodPlaces(c *gin.Context) {
	userID := c.GetString("x-user-id")
	dayID := c.Param("day_id")

	ids, err := ctrl.uc.GetFoodChainRecommendations(c.Request.Context(), userID, dayID)
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "RECOMMEND_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(c, "recommendations", ids, len(ids))
}

func sampleIDs(ids []string, n int) []string {
	if len(ids) <= n {
		return ids
	}
	shuffled := make([]string, len(ids))
	copy(shuffled, ids)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
