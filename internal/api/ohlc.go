package api

import (
	"net/http"

	ohlcDomain "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/ohlc"
	ohlcInfra "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/ohlc"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/errors"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/interval"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// defaultDayStartHour is 22:00 UTC, the conventional FX day boundary
// (5 PM New York close).
const defaultDayStartHour = 22

// OHLCHandler serves the read-only aggregate query endpoints.
type OHLCHandler struct {
	usecase ohlcDomain.Usecase
	logger  logger.Interface
}

// NewOHLCHandler creates a new OHLCHandler.
func NewOHLCHandler(usecase ohlcDomain.Usecase, logger logger.Interface) *OHLCHandler {
	return &OHLCHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// RegisterRoutes mounts the OHLC endpoints on router.
func (h *OHLCHandler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/ohlc")
	group.GET("/:granularity", h.GetBuckets)
}

// GetBuckets returns OHLC rows for one granularity inside
// [start, end). Custom-day queries take a day_start_hour and require
// timezone-aware bounds.
func (h *OHLCHandler) GetBuckets(c *gin.Context) {
	name := c.Param("granularity")
	if !interval.IsValid(name) {
		respondError(c, errors.NewValidationError("unknown granularity", "granularity"))
		return
	}

	from, fromZoned, err := parseTimestamp(c.Query("start"), "start")
	if err != nil {
		respondError(c, err)
		return
	}
	to, toZoned, err := parseTimestamp(c.Query("end"), "end")
	if err != nil {
		respondError(c, err)
		return
	}

	query := ohlcDomain.Query{
		Symbol:      c.Query("symbol"),
		Granularity: name,
		From:        from,
		To:          to,
	}

	if query.Limit, err = intQuery(c, "limit"); err != nil {
		respondError(c, err)
		return
	}

	if name == interval.CustomDay.Name {
		if !fromZoned {
			respondError(c, errors.NewMissingTimezone("start"))
			return
		}
		if !toZoned {
			respondError(c, errors.NewMissingTimezone("end"))
			return
		}
		if c.Query("day_start_hour") == "" {
			query.DayStartHour = defaultDayStartHour
		} else if query.DayStartHour, err = intQuery(c, "day_start_hour"); err != nil {
			respondError(c, err)
			return
		}
	}

	buckets, err := h.usecase.GetBuckets(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "success", ohlcInfra.List(buckets).ToMessageList())
}
