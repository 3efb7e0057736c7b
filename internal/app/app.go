package app

import (
	"log"
	"os"

	"employee-api/internal/migrations"
	"employee-api/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// BuildApp connects the infrastructure, applies migrations and registers all
// routes on the given router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	log.Println("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := migrations.Up(sqlDB); err != nil {
		return err
	}
	log.Println("migrations applied")

	// Redis is optional: without it the service runs uncached and without
	// idempotency locks.
	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		log.Println("redis connection established")
	}

	return registerModules(router, sqlDB, gormDB, redisClient)
}
