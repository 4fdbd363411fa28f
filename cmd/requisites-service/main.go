package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LavaJover/shvark-requisites-service/internal/app/setup"
	"github.com/LavaJover/shvark-requisites-service/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}

	ucs := setup.InitializeUseCases(deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = setup.Run(ctx, deps, ucs)
	deps.Close()
	if err != nil {
		log.Printf("service stopped with error: %v", err)
		os.Exit(1)
	}
}
