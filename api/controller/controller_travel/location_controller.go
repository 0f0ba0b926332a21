package controller_travel

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/controller"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
)

type LocationController struct {
	uc travel_interface.LocationUsecase
}

func NewLocationController(uc travel_interface.LocationUsecase) *LocationController {
	return &LocationController{uc: uc}
}

// GetSpots GET /location/
func (ctrl *LocationController) GetSpots(c *gin.Context) {
	spots, err := ctrl.uc.GetAllSpots(c.Request.Context())
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "LOCATION_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(c, "locations", spots, len(spots))
}

// GetFoodPlaces GET /location/foodplace/
func (ctrl *LocationController) GetFoodPlaces(c *gin.Context) {
	places, err := ctrl.uc.GetAllFoodPlaces(c.Request.Context())
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "LOCATION_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(c, "locations", places, len(places))
}

// SearchSpots GET /location/search?query=
func (ctrl *LocationController) SearchSpots(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "搜索关键词不能为空")
		return
	}

	spots, err := ctrl.uc.SearchSpots(c.Request.Context(), query)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "LOCATION_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(c, "locations", spots, len(spots))
}
