package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"gift-recommender-be/internal/model"
	"gift-recommender-be/pkg/database"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tests use DB_CONNECTION_STRING / REDIS_URL when set. Otherwise, with
// TESTCONTAINERS=1, they start throwaway containers; without either they skip.

func init() {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}
}

func useContainers() bool {
	return os.Getenv("TESTCONTAINERS") == "1"
}

// openTestDB connects to Postgres and migrates the catalog tables.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		if !useContainers() {
			t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
		}

		pgContainer, err := postgres.Run(ctx,
			"pgvector/pgvector:pg17",
			postgres.WithDatabase("gift_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := pgContainer.Terminate(ctx); err != nil {
				t.Logf("Failed to terminate postgres container: %v", err)
			}
		})

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error)
	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.ProductEmbedding{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// openTestRedis returns a client on a clean database.
func openTestRedis(t *testing.T) *goredis.Client {
	t.Helper()
	ctx := context.Background()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		if !useContainers() {
			t.Skip("Skipping integration test: REDIS_URL not set")
		}

		redisContainer, err := redis.Run(ctx,
			"redis:7.4-alpine",
			testcontainers.WithWaitStrategy(
				wait.ForLog("Ready to accept connections").
					WithStartupTimeout(30*time.Second),
			),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := redisContainer.Terminate(ctx); err != nil {
				t.Logf("Failed to terminate redis container: %v", err)
			}
		})

		url, err = redisContainer.ConnectionString(ctx)
		require.NoError(t, err)
	}

	opt, err := goredis.ParseURL(url)
	require.NoError(t, err)
	rdb := goredis.NewClient(opt)
	require.NoError(t, rdb.Ping(ctx).Err(), fmt.Sprintf("redis at %s", url))

	t.Cleanup(func() { rdb.Close() })
	return rdb
}
