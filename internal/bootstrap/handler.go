package bootstrap

import (
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/api"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/ws"
)

// Handler is the HTTP handler layer of the service.
type Handler struct {
	TickHandler   *api.TickHandler
	OHLCHandler   *api.OHLCHandler
	HealthHandler *api.HealthHandler
	WSHandler     *ws.Handler
}

// registerHandler registers the HTTP handlers.
func (b *Bootstrap) registerHandler() {
	b.Handler.TickHandler = api.NewTickHandler(b.Usecase.TickUsecase, b.Logger)
	b.Handler.OHLCHandler = api.NewOHLCHandler(b.Usecase.OHLCUsecase, b.Logger)
	b.Handler.HealthHandler = api.NewHealthHandler(b.Timescale, b.Redis, b.Stream.Hub, b.Logger)
	b.Handler.WSHandler = ws.NewHandler(b.Stream.Hub, b.Logger)
}
