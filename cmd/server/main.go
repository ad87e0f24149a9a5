package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Mohd-Saddam/fx-ohlc-microservice/app/server"
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	srv, err := server.InitServer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		log.Printf("Server exited with error: %v", err)
	}

	srv.Stop(context.Background())
}
