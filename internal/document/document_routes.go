package document

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
	documents := r.Group("/documents")
	documents.Use(middleware.SessionAuth(sessions))
	documents.Use(middleware.ContextLogger(logger))
	{
		documents.GET("/taxonomy",
			middleware.RateLimitByActor(5, 20),
			handler.GetTaxonomy,
		)

		documents.GET("/employee/:id",
			middleware.RateLimitByActor(5, 20),
			handler.ListByEmployee,
		)

		documents.POST("",
			middleware.RateLimitByActor(1, 5),
			handler.File,
		)
	}
}
