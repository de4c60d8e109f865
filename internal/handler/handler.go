package handler

import (
	"net/http"
	"strings"

	"shorturl-analytics/internal/middleware"
	"shorturl-analytics/internal/model"
	"shorturl-analytics/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// URLHandler 短链接相关的处理器
type URLHandler struct {
	registry  *service.Registry
	resolver  *service.Resolver
	analytics *service.Analytics
	baseURL   string
	log       *zap.Logger
}

// NewURLHandler 创建处理器实例，baseURL 用于拼接返回的短链接
func NewURLHandler(registry *service.Registry, resolver *service.Resolver, analytics *service.Analytics, baseURL string, log *zap.Logger) *URLHandler {
	return &URLHandler{
		registry:  registry,
		resolver:  resolver,
		analytics: analytics,
		baseURL:   strings.TrimRight(baseURL, "/"),
		log:       log.Named("handler"),
	}
}

// ShortenRequest 创建短链接的请求
type ShortenRequest struct {
	OriginalURL string `json:"originalUrl" example:"https://github.com/gin-gonic/gin"`
	Title       string `json:"title" example:"Gin"`
	CustomAlias string `json:"customAlias,omitempty" example:"gin"`
	UserID      *uint  `json:"userId,omitempty" example:"1"`
}

// ShortenResponse 创建成功的响应
type ShortenResponse struct {
	ShortURL  string `json:"shortUrl" example:"http://localhost:5000/gin"`
	ShortCode string `json:"shortCode" example:"gin"`
	ID        uint   `json:"id" example:"1"`
}

// Shorten godoc
// @Summary 创建短链接
// @Description 为长 URL 创建短链接。自定义别名需要登录，请求体中的 userId 必须与令牌一致
// @Tags URL
// @Accept  json
// @Produce  json
// @Param   request  body   ShortenRequest  true  "长链接与标题"
// @Success 200 {object} ShortenResponse "成功响应"
// @Failure 400 {object} ErrorResponse "请求无效"
// @Failure 401 {object} ErrorResponse "自定义别名需要登录"
// @Failure 403 {object} ErrorResponse "userId 与令牌不一致"
// @Failure 409 {object} ErrorResponse "别名已被占用"
// @Router /api/urls/shorten [post]
func (h *URLHandler) Shorten(c *gin.Context) {
	var req ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	var owner *uint
	if id, ok := middleware.UserID(c); ok {
		owner = &id
	}
	if req.UserID != nil {
		if owner == nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Please login to create links for a user"})
			return
		}
		if *req.UserID != *owner {
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "userId does not match the authenticated user"})
			return
		}
	}

	link, err := h.registry.Create(c.Request.Context(), service.CreateLinkInput{
		OriginalURL: req.OriginalURL,
		Title:       req.Title,
		CustomAlias: req.CustomAlias,
		OwnerID:     owner,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, ShortenResponse{
		ShortURL:  h.baseURL + "/" + link.ShortCode,
		ShortCode: link.ShortCode,
		ID:        link.ID,
	})
}

// ListByUser godoc
// @Summary 获取用户的短链接
// @Description 按创建时间倒序返回用户的全部短链接（含点击记录），只能查看自己的
// @Tags URL
// @Security ApiKeyAuth
// @Produce  json
// @Param   userId  path  int  true  "用户 ID"
// @Success 200 {array} model.Link "成功响应"
// @Failure 401 {object} ErrorResponse "未认证"
// @Failure 403 {object} ErrorResponse "无权查看"
// @Router /api/urls/user/{userId} [get]
func (h *URLHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	if current, _ := middleware.UserID(c); current != userID {
		c.JSON(http.StatusForbidden, ErrorResponse{Message: "Not authorized to view these URLs"})
		return
	}

	links, err := h.registry.FindByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if links == nil {
		links = []model.Link{}
	}
	c.JSON(http.StatusOK, links)
}

// Delete godoc
// @Summary 删除短链接
// @Description 删除短链接及其全部点击记录，只有所有者可以删除
// @Tags URL
// @Security ApiKeyAuth
// @Produce  json
// @Param   id  path  int  true  "链接 ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 401 {object} ErrorResponse "未认证"
// @Failure 403 {object} ErrorResponse "不是所有者"
// @Failure 404 {object} ErrorResponse "链接不存在"
// @Router /api/urls/{id} [delete]
func (h *URLHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	requester, _ := middleware.UserID(c)

	if err := h.registry.Delete(c.Request.Context(), id, requester); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "URL deleted successfully"})
}

// Analytics godoc
// @Summary 短链接统计
// @Description 总点击数、独立访客数、最近 31 天（UTC）每日点击数与设备分布
// @Tags URL
// @Security ApiKeyAuth
// @Produce  json
// @Param   id  path  int  true  "链接 ID"
// @Success 200 {object} analytics.Summary "成功响应"
// @Failure 401 {object} ErrorResponse "未认证"
// @Failure 404 {object} ErrorResponse "链接不存在"
// @Router /api/urls/{id}/analytics [get]
func (h *URLHandler) Analytics(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	summary, err := h.analytics.Summarize(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Redirect godoc
// @Summary 短链接跳转
// @Description 记录一次点击并 302 跳转到原始地址
// @Tags Redirect
// @Param   shortCode  path  string  true  "短码或别名"
// @Success 302 "跳转到原始地址"
// @Failure 404 {object} ErrorResponse "链接不存在"
// @Router /{shortCode} [get]
func (h *URLHandler) Redirect(c *gin.Context) {
	dest, err := h.resolver.Resolve(c.Request.Context(), c.Param("shortCode"), service.Visitor{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Redirect(http.StatusFound, dest)
}
