package app

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-arquivo/internal/bootstrap"
	"go-arquivo/internal/middleware"
	"go-arquivo/internal/session"
	"go-arquivo/internal/shared/apperror"
	"go-arquivo/internal/shared/connection"
	"go-arquivo/internal/shared/response"
)

// BuildApp connects the infrastructure, migrates the schema and wires
// every module onto the router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L()

	gormDB, err := connectDatabase()
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := bootstrap.RunMigrations(gormDB); err != nil {
		return err
	}
	if err := bootstrap.SeedAdminUser(context.Background(), gormDB); err != nil {
		return err
	}

	// Redis is optional: without it the cached lists fall through to
	// the database on every call.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		logger.Info("redis connection established")
	}

	sessions := session.NewMemoryStore(sessionTTL())

	router.Use(middleware.RequestID())
	router.NoRoute(func(c *gin.Context) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	})

	registerModules(router, gormDB, rdb, sessions, logger)

	return nil
}

func connectDatabase() (*gorm.DB, error) {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "arquivo.db"
		}
		return connection.ConnectSQLite(path)
	}

	return connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
}

func sessionTTL() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("SESSION_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}
