package ws

import (
	"net/http"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/broadcast"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/interval"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Handler upgrades HTTP requests and attaches clients to hub topics.
type Handler struct {
	hub      *Hub
	logger   logger.Interface
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket Handler on hub.
func NewHandler(hub *Hub, logger logger.Interface) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes mounts the websocket endpoints on router.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/ws/ticks", h.ServeTicks)
	router.GET("/ws/ohlc/:granularity", h.ServeAggregate)
}

// ServeTicks streams every persisted tick.
func (h *Handler) ServeTicks(c *gin.Context) {
	h.serve(c, broadcast.TopicRawTicks)
}

// ServeAggregate streams periodic bucket snapshots for one
// granularity.
func (h *Handler) ServeAggregate(c *gin.Context) {
	granularity, err := interval.Get(c.Param("granularity"))
	if err != nil || granularity.Topic == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "unknown stream",
			"code":    "not_found",
		})
		return
	}
	h.serve(c, broadcast.Topic(granularity.Topic))
}

func (h *Handler) serve(c *gin.Context, topic broadcast.Topic) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), err, logger.Field{
			Key:   "action",
			Value: "upgrade_websocket",
		})
		return
	}

	client := NewClient(conn, h.logger)
	h.hub.Register(topic, client)
	defer h.hub.Unregister(topic, client)

	// blocks until the connection drops
	client.Wait()
}
