// Package bootstrap wires repositories, usecases, handlers and the
// streaming workers together.
package bootstrap

import (
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/metrics"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/config"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/redis"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/timescale"
)

// Bootstrap is the dependency container for the service.
type Bootstrap struct {
	Repository Repository
	Usecase    Usecase
	Handler    Handler
	Stream     Stream

	Config    *config.Config
	Logger    logger.Interface
	Metrics   *metrics.Metrics
	Timescale timescale.TimescaleClient
	Redis     redis.Client
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config    *config.Config
	Logger    logger.Interface
	Timescale timescale.TimescaleClient
	Redis     redis.Client
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Config = config.Config
	b.Logger = config.Logger
	b.Timescale = config.Timescale
	b.Redis = config.Redis
	b.Metrics = metrics.New()

	b.registerRepository()
	b.registerUsecase()
	b.registerStream()
	b.registerHandler()

	return *b
}
