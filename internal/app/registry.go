package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-arquivo/internal/auth"
	"go-arquivo/internal/cabinet"
	"go-arquivo/internal/deadarchive"
	"go-arquivo/internal/department"
	"go-arquivo/internal/document"
	"go-arquivo/internal/employee"
	"go-arquivo/internal/loan"
	"go-arquivo/internal/messaging/kafka"
	"go-arquivo/internal/movement"
	"go-arquivo/internal/session"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	sessions session.Store,
	logger *zap.Logger,
) {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	cabinetRepo := cabinet.NewRepository(gormDB)
	deadArchiveRepo := deadarchive.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	loanRepo := loan.NewRepository(gormDB)
	movementRepo := movement.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo, sessions, logger)
	cabinetService := cabinet.NewService(gormDB, cabinetRepo, logger)
	deadArchiveService := deadarchive.NewService(gormDB, deadArchiveRepo, outboxRepo, rdb, logger)
	departmentService := department.NewService(departmentRepo, rdb, logger)
	documentService := document.NewService(documentRepo, rdb, logger)
	employeeService := employee.NewService(gormDB, employeeRepo, cabinetRepo, outboxRepo, logger)
	loanService := loan.NewService(gormDB, loanRepo, outboxRepo, logger)
	movementService := movement.NewService(movementRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	cabinetHandler := cabinet.NewHandler(cabinetService, logger)
	deadArchiveHandler := deadarchive.NewHandler(deadArchiveService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	documentHandler := document.NewHandler(documentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	loanHandler := loan.NewHandler(loanService, logger)
	movementHandler := movement.NewHandler(movementService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		cabinet.RegisterRoutes(api, cabinetHandler, sessions, logger)
		deadarchive.RegisterRoutes(api, deadArchiveHandler, sessions, logger)
		department.RegisterRoutes(api, departmentHandler, sessions, logger)
		document.RegisterRoutes(api, documentHandler, sessions, logger)
		employee.RegisterRoutes(api, employeeHandler, sessions, logger)
		loan.RegisterRoutes(api, loanHandler, sessions, logger)
		movement.RegisterRoutes(api, movementHandler, sessions, logger)
	}
}
