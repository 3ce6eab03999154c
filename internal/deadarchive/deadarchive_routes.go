package deadarchive

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
	archive := r.Group("/dead-archive")
	archive.Use(middleware.SessionAuth(sessions))
	archive.Use(middleware.ContextLogger(logger))
	{
		archive.GET("/boxes",
			middleware.RateLimitByActor(5, 20),
			handler.ListBoxes,
		)

		archive.POST("/boxes",
			middleware.RateLimitByActor(0.5, 2),
			handler.CreateBox,
		)

		archive.POST("/transfers",
			middleware.RateLimitByActor(1, 5),
			handler.Transfer,
		)

		archive.GET("/disposal-candidates",
			middleware.RateLimitByActor(3, 10),
			handler.ListDisposalCandidates,
		)

		archive.POST("/disposals",
			middleware.RateLimitByActor(0.5, 2),
			handler.RegisterDisposal,
		)
	}
}
