package department

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
	departments := r.Group("/departments")
	departments.Use(middleware.SessionAuth(sessions))
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("",
			middleware.RateLimitByActor(3, 10),
			handler.GetAll,
		)

		departments.GET("/options",
			middleware.RateLimitByActor(5, 20),
			handler.GetOptions,
		)

		departments.GET("/:id",
			middleware.RateLimitByActor(3, 10),
			handler.GetByID,
		)

		departments.POST("",
			middleware.RateLimitByActor(0.5, 2),
			handler.Create,
		)

		departments.PUT("/:id",
			middleware.RateLimitByActor(0.5, 2),
			handler.Update,
		)

		departments.DELETE("/:id",
			middleware.RateLimitByActor(0.2, 1),
			handler.Deactivate,
		)
	}
}
