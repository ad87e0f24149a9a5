package bootstrap

import (
	ohlcInfra "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/ohlc"
	tickInfra "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/tick"
)

// Repository is the repository layer of the service.
type Repository struct {
	TickRepository tickInfra.TickRepository
	OHLCRepository ohlcInfra.OHLCRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.TickRepository = tickInfra.NewRepository(b.Timescale)
	b.Repository.OHLCRepository = ohlcInfra.NewRepository(b.Timescale)
}
