package loan

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-arquivo/internal/middleware"
	"go-arquivo/internal/session"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	sessions session.Store,
	logger *zap.Logger,
) {
	loans := r.Group("/loans")
	loans.Use(middleware.SessionAuth(sessions))
	loans.Use(middleware.ContextLogger(logger))
	{
		loans.GET("",
			middleware.RateLimitByActor(5, 20),
			handler.List,
		)

		loans.GET("/overdue",
			middleware.RateLimitByActor(5, 20),
			handler.ListOverdue,
		)

		loans.POST("",
			middleware.RateLimitByActor(1, 5),
			handler.Create,
		)

		loans.POST("/:id/return",
			middleware.RateLimitByActor(1, 5),
			handler.Return,
		)
	}
}
