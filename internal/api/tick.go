package api

import (
	"fmt"
	"net/http"
	"strconv"

	tickDomain "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/tick"
	tickInfra "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/tick"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/errors"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// TickHandler serves the tick write and query endpoints.
type TickHandler struct {
	usecase tickDomain.Usecase
	logger  logger.Interface
}

// NewTickHandler creates a new TickHandler.
func NewTickHandler(usecase tickDomain.Usecase, logger logger.Interface) *TickHandler {
	return &TickHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// RegisterRoutes mounts the tick endpoints on router.
func (h *TickHandler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/ticks")
	group.POST("", h.Create)
	group.POST("/bulk", h.CreateBulk)
	group.GET("", h.List)
	group.GET("/latest", h.Latest)
	group.PUT("", h.UpdatePrice)
	group.DELETE("", h.DeleteRange)
	group.DELETE("/point", h.DeletePoint)
}

// TickRequest is the wire form of one tick write.
type TickRequest struct {
	Time   string  `json:"time" binding:"required"`
	Symbol string  `json:"symbol" binding:"required"`
	Price  float64 `json:"price" binding:"required"`
}

func (r TickRequest) toTick(field string) (*tickInfra.Tick, error) {
	ts, _, err := parseTimestamp(r.Time, field)
	if err != nil {
		return nil, err
	}
	return &tickInfra.Tick{
		Time:   ts,
		Symbol: r.Symbol,
		Price:  r.Price,
	}, nil
}

// Create stores a single tick and mirrors it onto the live feed.
func (h *TickHandler) Create(c *gin.Context) {
	var req TickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewValidationError(err.Error(), "body"))
		return
	}

	entry, err := req.toTick("time")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.usecase.CreateTick(c.Request.Context(), entry); err != nil {
		respondError(c, err)
		return
	}

	h.usecase.PublishTick(c.Request.Context(), entry)

	respond(c, http.StatusCreated, "tick created", entry.ToMessage())
}

// CreateBulk stores a batch of ticks in one statement.
func (h *TickHandler) CreateBulk(c *gin.Context) {
	var reqs []TickRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondError(c, errors.NewValidationError(err.Error(), "body"))
		return
	}

	ticks := make([]*tickInfra.Tick, 0, len(reqs))
	for i, req := range reqs {
		entry, err := req.toTick(fmt.Sprintf("ticks[%d].time", i))
		if err != nil {
			respondError(c, err)
			return
		}
		ticks = append(ticks, entry)
	}

	if err := h.usecase.CreateTicks(c.Request.Context(), ticks); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, fmt.Sprintf("created %d ticks", len(ticks)), gin.H{
		"created": len(ticks),
	})
}

// List returns ticks matching the symbol and time range, oldest first.
func (h *TickHandler) List(c *gin.Context) {
	filter := tickInfra.Filter{
		Symbol: c.Query("symbol"),
	}

	if value := c.Query("start"); value != "" {
		ts, _, err := parseTimestamp(value, "start")
		if err != nil {
			respondError(c, err)
			return
		}
		filter.From = &ts
	}
	if value := c.Query("end"); value != "" {
		ts, _, err := parseTimestamp(value, "end")
		if err != nil {
			respondError(c, err)
			return
		}
		filter.To = &ts
	}

	var err error
	if filter.Limit, err = intQuery(c, "limit"); err != nil {
		respondError(c, err)
		return
	}
	if filter.Offset, err = intQuery(c, "offset"); err != nil {
		respondError(c, err)
		return
	}

	ticks, err := h.usecase.GetTicks(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	messages := make([]tickInfra.Message, len(ticks))
	for i, entry := range ticks {
		messages[i] = entry.ToMessage()
	}

	respond(c, http.StatusOK, "success", messages)
}

// Latest returns the most recent tick for a symbol.
func (h *TickHandler) Latest(c *gin.Context) {
	entry, err := h.usecase.GetLatestTick(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "success", entry.ToMessage())
}

// UpdatePrice rewrites the price of an existing tick.
func (h *TickHandler) UpdatePrice(c *gin.Context) {
	var req TickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.NewValidationError(err.Error(), "body"))
		return
	}

	ts, _, err := parseTimestamp(req.Time, "time")
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.usecase.UpdateTickPrice(c.Request.Context(), req.Symbol, ts, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "tick updated", entry.ToMessage())
}

// DeleteRange removes all ticks for a symbol inside [start, end).
func (h *TickHandler) DeleteRange(c *gin.Context) {
	symbol := c.Query("symbol")

	from, _, err := parseTimestamp(c.Query("start"), "start")
	if err != nil {
		respondError(c, err)
		return
	}
	to, _, err := parseTimestamp(c.Query("end"), "end")
	if err != nil {
		respondError(c, err)
		return
	}

	deleted, err := h.usecase.DeleteTickRange(c.Request.Context(), symbol, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, fmt.Sprintf("deleted %d ticks", deleted), gin.H{
		"deleted": deleted,
	})
}

// DeletePoint removes a single tick by (symbol, time).
func (h *TickHandler) DeletePoint(c *gin.Context) {
	symbol := c.Query("symbol")

	ts, _, err := parseTimestamp(c.Query("time"), "time")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.usecase.DeleteTick(c.Request.Context(), symbol, ts); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "tick deleted", nil)
}

func intQuery(c *gin.Context, name string) (int, error) {
	value := c.Query(name)
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("%s must be an integer", name), name)
	}
	return parsed, nil
}
