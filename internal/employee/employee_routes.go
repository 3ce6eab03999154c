package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.SessionAuth(sessions))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByActor(5, 20),
			handler.List,
		)

		employees.GET("/:id",
			middleware.RateLimitByActor(5, 20),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByActor(1, 5),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByActor(1, 5),
			handler.Update,
		)

		employees.POST("/:id/terminate",
			middleware.RateLimitByActor(0.5, 2),
			handler.Terminate,
		)
	}
}
