package movement

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
	movements := r.Group("/movements")
	movements.Use(middleware.SessionAuth(sessions))
	movements.Use(middleware.ContextLogger(logger))
	{
		movements.GET("",
			middleware.RateLimitByActor(3, 10),
			handler.ListRecent,
		)

		movements.POST("",
			middleware.RateLimitByActor(1, 5),
			handler.Record,
		)
	}
}
