package salary

import (
	"go-salary/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.IdentityResolver) {
	r.POST("/salary", middleware.RateLimitByIP(1, 10), handler.Submit)

	admin := r.Group("")
	admin.Use(middleware.AuthMiddleware(resolver), middleware.RequireAdmin())
	{
		admin.GET("/salaries", middleware.RateLimitByUser(5, 20), handler.List)
		admin.POST("/commission", middleware.RateLimitByUser(2, 10), handler.UpdateCommission)
		admin.POST("/user-salary", middleware.RateLimitByUser(2, 10), handler.UpdateSalary)
		admin.DELETE("/user/:email", middleware.RateLimitByUser(2, 10), handler.Delete)
	}
}
