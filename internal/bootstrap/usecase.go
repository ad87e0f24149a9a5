package bootstrap

import (
	ohlcDomain "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/ohlc"
	tickDomain "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/domain/tick"
	ohlcUc "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/usecase/ohlc"
	tickUc "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/usecase/tick"
)

// Usecase is the usecase layer of the service.
type Usecase struct {
	TickUsecase tickDomain.Usecase
	OHLCUsecase ohlcDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.TickUsecase = tickUc.NewUsecase(b.Repository.TickRepository, b.Redis, b.Config.Redis.TickChannel, b.Logger)
	b.Usecase.OHLCUsecase = ohlcUc.NewUsecase(b.Repository.OHLCRepository, b.Logger)
}
