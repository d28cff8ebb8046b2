package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mealsota/nutribot/internal/crawler"
	"github.com/mealsota/nutribot/internal/crawler/sources"
	"github.com/mealsota/nutribot/pkg/config"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Named("foodsota")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Create context that will be canceled on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	go func() {
		sc := make(chan os.Signal, 1)
		signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
		<-sc
		log.Info("Received shutdown signal, gracefully shutting down...")
		cancel()
	}()

	// Initialize crawler with the food composition source
	foodCrawler, err := crawler.New(cfg, log, sources.NewFoodDBCrawler(log))
	if err != nil {
		log.Fatal("Failed to initialize crawler", zap.Error(err))
	}
	defer func() {
		if err := foodCrawler.Close(); err != nil {
			log.Error("Error closing crawler", zap.Error(err))
		}
	}()

	log.Info("Starting food catalogue crawler service")

	interval := time.Duration(cfg.CrawlIntervalMinutes) * time.Minute
	log.Info("Crawler configured", zap.Duration("interval", interval))

	// Blocks until the context is canceled
	foodCrawler.StartScheduledRuns(ctx, interval)

	log.Info("Food crawler service shut down successfully")
}
