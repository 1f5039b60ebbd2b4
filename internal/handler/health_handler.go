package handler

import (
	"context"
	"time"

	"consult-hub/internal/domain"
	"consult-hub/internal/dto"
	"consult-hub/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports liveness and the state of Redis and the database
type HealthHandler struct {
	cache domain.Cache
	db    Pinger
}

// NewHealthHandler creates a health handler. db may be nil when the
// database is not configured.
func NewHealthHandler(cache domain.Cache, db Pinger) *HealthHandler {
	return &HealthHandler{cache: cache, db: db}
}

// Health godoc
// @Summary Liveness check
// @Description Pings Redis and the database. Responds 503 when either is down.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Checks: map[string]string{}}
	check := func(name string, ping func(context.Context) error) {
		if err := ping(ctx); err != nil {
			logger.Get().Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			return
		}
		resp.Checks[name] = "up"
	}

	check("redis", h.cache.Ping)
	if h.db != nil {
		check("database", h.db.PingContext)
	}

	if resp.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
