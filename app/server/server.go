// Package server assembles the full service: storage clients, the
// streaming workers and the HTTP surface.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/api"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/internal/bootstrap"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/config"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/logger"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/redis"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/timescale"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

// Server runs the HTTP API plus the feed consumer and the aggregate
// publisher inside one process.
type Server struct {
	Engine    *gin.Engine
	Config    *config.Config
	Bootstrap bootstrap.Bootstrap

	logger logger.Interface
	db     timescale.TimescaleClient
	redis  redis.Client
	http   *http.Server
}

// InitServer connects the backing stores and wires the service.
func InitServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	appLogger, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		return nil, err
	}

	db, err := timescale.NewClient(ctx, cfg.Timescale)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timescale client: %w", err)
	}

	redisClient := redis.NewClient(appLogger, &cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	server := &Server{
		Config: cfg,
		logger: appLogger,
		db:     db,
		redis:  redisClient,
	}

	server.Bootstrap = (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Config:    cfg,
		Logger:    appLogger,
		Timescale: db,
		Redis:     redisClient,
	})

	server.registerRoutes()

	return server, nil
}

func (s *Server) registerRoutes() {
	if s.Config.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), api.RequestID())

	handler := s.Bootstrap.Handler
	handler.TickHandler.RegisterRoutes(engine)
	handler.OHLCHandler.RegisterRoutes(engine)
	handler.HealthHandler.RegisterRoutes(engine)
	handler.WSHandler.RegisterRoutes(engine)
	engine.GET("/metrics", gin.WrapH(s.Bootstrap.Metrics.Handler()))

	s.Engine = engine
	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Config.App.Port),
		Handler: engine,
	}
}

// Run starts the HTTP listener and the streaming workers and blocks
// until ctx is cancelled or one of them fails.
func (s *Server) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.logger.InfoContext(groupCtx, "http server listening", logger.Field{
			Key:   "addr",
			Value: s.http.Addr,
		})
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		s.Bootstrap.Stream.TickConsumer.Start(groupCtx)
		return nil
	})

	group.Go(func() error {
		s.Bootstrap.Stream.Publisher.Start(groupCtx)
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// Stop releases the stores and flushes the consumer.
func (s *Server) Stop(ctx context.Context) {
	if err := s.Bootstrap.Stream.TickConsumer.Stop(); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "stop_consumer",
		})
	}

	if err := s.redis.Disconnect(ctx); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "disconnect_redis",
		})
	}

	s.db.Close()
}
