package controller_travel

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/controller"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewController struct {
	uc travel_interface.ReviewUsecase
}

func NewReviewController(uc travel_interface.ReviewUsecase) *ReviewController {
	return &ReviewController{uc: uc}
}

// GetLocationReviews GET /location/:location_id/reviews/
func (ctrl *ReviewController) GetLocationReviews(c *gin.Context) {
	locationID := c.Param("location_id")

	reviews, err := ctrl.uc.GetLocationReviews(c.Request.Context(), locationID)
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "REVIEW_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(c, "reviews", reviews, len(reviews))
}

// CreateReview POST /location/:location_id/reviews/create/
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var req struct {
		Comment string `form:"comment" json:"comment"`
		Rating  int    `form:"rating" binding:"required,min=1,max=5" json:"rating"`
	}
	if err := c.ShouldBind(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	locationID, err := primitive.ObjectIDFromHex(c.Param("location_id"))
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "无效的地点ID格式")
		return
	}
	userID, err := primitive.ObjectIDFromHex(c.GetString("x-user-id"))
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "无效的用户ID格式")
		return
	}

	review := &travel_models.Review{
		Location: locationID,
		User:     userID,
		Comment:  req.Comment,
		Rating:   req.Rating,
	}
	if err := ctrl.uc.CreateReview(c.Request.Context(), review); err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "REVIEW_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"review": review,
	})
}
