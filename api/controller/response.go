package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse 统一成功响应，数据挂在key下并附带条数
func SuccessResponse(c *gin.Context, key string, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		key:      data,
		"count":  count,
	})
}

// ErrorResponse 统一错误响应，code为机器可读错误码
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"status": "error",
		"code":   code,
		"error":  message,
	})
}
