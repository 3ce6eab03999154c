package cabinet

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
	cabinets := r.Group("/cabinets")
	cabinets.Use(middleware.SessionAuth(sessions))
	cabinets.Use(middleware.ContextLogger(logger))
	{
		cabinets.GET("",
			middleware.RateLimitByActor(3, 10),
			handler.GetAll,
		)

		cabinets.GET("/occupation-map",
			middleware.RateLimitByActor(3, 10),
			handler.GetOccupationMap,
		)

		cabinets.POST("",
			middleware.RateLimitByActor(0.5, 2),
			handler.CreateCabinet,
		)

		cabinets.POST("/:id/drawers",
			middleware.RateLimitByActor(0.5, 2),
			handler.CreateDrawer,
		)

		cabinets.POST("/assign",
			middleware.RateLimitByActor(1, 5),
			handler.AssignPosition,
		)

		cabinets.POST("/reorganization-plan",
			middleware.RateLimitByActor(0.5, 2),
			handler.SuggestReorganization,
		)
	}
}
