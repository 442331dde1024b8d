package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"videotube/pkg/response"
)

type HealthHandler struct {
	Pool  *pgxpool.Pool
	Redis *redis.Client
}

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{Pool: pool, Redis: rdb}
}

// Check pings the database and redis with a short deadline.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"postgres": "ok", "redis": "ok"}
	healthy := true

	if h.Pool == nil || h.Pool.Ping(ctx) != nil {
		status["postgres"] = "down"
		healthy = false
	}
	if h.Redis == nil || h.Redis.Ping(ctx).Err() != nil {
		status["redis"] = "down"
		healthy = false
	}

	if !healthy {
		response.Error[any](c, http.StatusServiceUnavailable, "degraded", status)
		return
	}
	response.Success(c, http.StatusOK, status, "healthy", nil)
}
