package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisOK := true
			if err := redisClient.Ping(ctx).Err(); err != nil {
				redisOK = false
			}

			mongoOK := true
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			if err := mongoClient.Ping(pingCtx, nil); err != nil {
				mongoOK = false
			}
			cancel()

			mu.Lock()
			currentHealth = HealthStatus{
				Mongo:     mongoOK,
				Redis:     redisOK,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
