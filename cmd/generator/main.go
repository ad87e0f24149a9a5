package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/generator"
	tickInfra "github.com/Mohd-Saddam/fx-ohlc-microservice/internal/infrastructure/timescale/tick"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/metrics"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/config"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/redis"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/timescale"
)

func main() {
	backfill := flag.Duration("backfill", 0, "seed this much tick history into storage before streaming (e.g. 24h)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := timescale.NewClient(ctx, cfg.Timescale)
	if err != nil {
		log.Fatalf("Failed to initialize TimescaleDB client: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(appLogger, &cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Disconnect(context.Background())

	gen := generator.NewGenerator(
		cfg.Generator,
		cfg.Redis.TickChannel,
		redisClient,
		tickInfra.NewRepository(db),
		appLogger,
		metrics.New(),
	)

	if *backfill > 0 {
		now := time.Now().UTC()
		imported, err := gen.Backfill(ctx, now.Add(-*backfill), now)
		if err != nil {
			log.Fatalf("Backfill failed: %v", err)
		}
		log.Printf("Backfilled %d ticks", imported)
	}

	gen.Start(ctx)
}
