package controller_travel

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/controller"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserController struct {
	uc travel_interface.UserUsecase
}

func NewUserController(uc travel_interface.UserUsecase) *UserController {
	return &UserController{uc: uc}
}

// Signup POST /auth/signup
func (ctrl *UserController) Signup(c *gin.Context) {
	var req travel_interface.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	resp, err := ctrl.uc.Signup(c.Request.Context(), &req)
	if err != nil {
		controller.ErrorResponse(c, http.StatusConflict, "SIGNUP_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login POST /auth/login
func (ctrl *UserController) Login(c *gin.Context) {
	var req travel_interface.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	resp, err := ctrl.uc.Login(c.Request.Context(), &req)
	if err != nil {
		controller.ErrorResponse(c, http.StatusUnauthorized, "LOGIN_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePreferences POST /auth/preferences
func (ctrl *UserController) UpdatePreferences(c *gin.Context) {
	var req struct {
		Activity      bool `form:"activity" json:"activity"`
		Art           bool `form:"art" json:"art"`
		Culture       bool `form:"culture" json:"culture"`
		Entertainment bool `form:"entertainment" json:"entertainment"`
		History       bool `form:"history" json:"history"`
		Nature        bool `form:"nature" json:"nature"`
		Religion      bool `form:"religion" json:"religion"`
	}
	if err := c.ShouldBind(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.GetString("x-user-id"))
	if err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_ID", "无效的用户ID格式")
		return
	}

	preferences := &travel_models.Preferences{
		User:          userID,
		Activity:      req.Activity,
		Art:           req.Art,
		Culture:       req.Culture,
		Entertainment: req.Entertainment,
		History:       req.History,
		Nature:        req.Nature,
		Religion:      req.Religion,
	}
	if err := ctrl.uc.UpdatePreferences(c.Request.Context(), preferences); err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "PREFERENCES_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(c, "preferences", preferences, 1)
}
