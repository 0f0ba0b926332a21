package controller_travel

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/controller"
	"github.com/lakbay-travel/lakbay-backend/domain/domain_travel/travel_interface"
)

type ClickController struct {
	store travel_interface.ClickStore
}

func NewClickController(store travel_interface.ClickStore) *ClickController {
	return &ClickController{store: store}
}

// RecordClick POST /clicks/:location_id/
// 上报失败只记录日志，客户端始终拿到成功响应
func (ctrl *ClickController) RecordClick(c *gin.Context) {
	userID := c.GetString("x-user-id")
	locationID := c.Param("location_id")

	if err := ctrl.store.RecordClick(c.Request.Context(), userID, locationID); err != nil {
		fmt.Printf("点击上报失败: %v\n", err)
		c.JSON(http.StatusAccepted, gin.H{
			"status": "accepted",
		})
		return
	}

	controller.SuccessResponse(c, "click", gin.H{
		"location_id": locationID,
	}, 1)
}
