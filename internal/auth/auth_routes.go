package auth

import (
	"go-salary/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.IdentityResolver) {
	r.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)

	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(resolver))
	{
		authed.POST("/logout", middleware.RateLimitByUser(2, 5), handler.Logout)
		authed.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
