package handler

import (
	"shorturl-analytics/internal/middleware"
	auth "shorturl-analytics/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册业务路由。/:shortCode 最后注册，静态路由优先匹配。
func RegisterRoutes(router *gin.Engine, urls *URLHandler, accounts *AuthHandler, health *HealthHandler, tokens *auth.TokenManager) {
	requireAuth := middleware.RequireAuth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)

	router.GET("/health", health.HealthCheck)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", accounts.Register)
		authGroup.POST("/login", accounts.Login)
		authGroup.GET("/me", requireAuth, accounts.GetCurrentUser)

		urlGroup := api.Group("/urls")
		urlGroup.POST("/shorten", optionalAuth, urls.Shorten)
		urlGroup.GET("/user/:userId", requireAuth, urls.ListByUser)
		urlGroup.DELETE("/:id", requireAuth, urls.Delete)
		urlGroup.GET("/:id/analytics", requireAuth, urls.Analytics)
	}

	router.GET("/:shortCode", urls.Redirect)
}
