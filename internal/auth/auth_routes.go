package auth

import (
	"github.com/gin-gonic/gin"

	"go-arquivo/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login",
			middleware.RateLimitByIP(1, 5),
			handler.Login,
		)
		authGroup.POST("/logout", handler.Logout)
		authGroup.GET("/me", handler.Me)
	}
}
