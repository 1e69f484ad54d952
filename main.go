package main

import (
	"fmt"

	auction "auction-office/internal/auctionService"
	"auction-office/internal/config"
	"auction-office/internal/repository"
	"auction-office/internal/server"
	"auction-office/utils"
)

func main() {
	cfg := config.Load()

	store, err := buildStore(cfg)
	if err != nil {
		utils.Fatal("failed to open record store", map[string]any{"error": err.Error()})
	}

	auctionSvc := auction.NewAuctionService(store)

	router := server.SetupRouter(auctionSvc)

	addr := fmt.Sprintf(":%s", cfg.Port)
	utils.Info("starting auction office server", map[string]any{"addr": addr, "env": cfg.Env})
	if err := router.Run(addr); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}

// buildStore selects the record store: sqlite when a DSN is configured,
// otherwise the in-memory store for local development
func buildStore(cfg config.Config) (repository.AuctionStore, error) {
	if cfg.DatabaseDSN == "" {
		utils.Warn("DATABASE_DSN not set, using in-memory store", nil)
		return repository.NewMemoryStore(), nil
	}
	return repository.NewGormStore(cfg.DatabaseDSN)
}
