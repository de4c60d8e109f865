package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shorturl-analytics/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 错误响应
type ErrorResponse struct {
	Message string `json:"message" example:"URL not found"`
}

// MessageResponse 操作结果
type MessageResponse struct {
	Message string `json:"message" example:"URL deleted successfully"`
}

// 业务错误到状态码的映射，按顺序匹配
var errorStatus = []struct {
	err    error
	status int
}{
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrEmailTaken, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrAuthorization, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrConflict, http.StatusConflict},
}

// respondError 把业务错误写成 {"message": ...}，未知错误统一返回 500
func respondError(c *gin.Context, log *zap.Logger, err error) {
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			c.JSON(m.status, ErrorResponse{Message: detail(err, m.err)})
			return
		}
	}
	log.Error("请求处理失败",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error"})
}

// detail 去掉 "%w: " 包装的前缀，只保留面向用户的说明
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
