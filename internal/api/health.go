package api

import (
	"net/http"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/ws"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/redis"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/timescale"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports dependency health and live stream stats.
type HealthHandler struct {
	timescaleClient timescale.TimescaleClient
	redisClient     redis.Client
	hub             *ws.Hub
	logger          logger.Interface
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(
	timescaleClient timescale.TimescaleClient,
	redisClient redis.Client,
	hub *ws.Hub,
	logger logger.Interface,
) *HealthHandler {
	return &HealthHandler{
		timescaleClient: timescaleClient,
		redisClient:     redisClient,
		hub:             hub,
		logger:          logger,
	}
}

// RegisterRoutes mounts the health endpoints on router.
func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.Health)
	router.GET("/stats", h.Stats)
}

// Health pings both backing stores. Degraded dependencies flip the
// status to 503 so load balancers rotate the instance out.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	status := http.StatusOK
	checks := gin.H{
		"timescale": "ok",
		"redis":     "ok",
	}

	if err := h.timescaleClient.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "health_timescale",
		})
		checks["timescale"] = "unavailable"
		status = http.StatusServiceUnavailable
	}

	if err := h.redisClient.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "health_redis",
		})
		checks["redis"] = "unavailable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, checks)
}

// Stats reports websocket subscriber counts per topic.
func (h *HealthHandler) Stats(c *gin.Context) {
	respond(c, http.StatusOK, "success", gin.H{
		"topics": h.hub.Stats(),
	})
}
