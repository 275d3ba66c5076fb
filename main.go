package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"paintvault_server/api"
	"paintvault_server/config"
	"paintvault_server/database"
	"paintvault_server/services"
	"paintvault_server/structs"
	"syscall"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize logger and database
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	if err := database.Initialize(); err != nil {
		logger.Fatal("Failed to initialize database", gecho.Field("error", err))
	}
}

func main() {
	ingestPath := flag.String("ingest", "", "ingest vendor dumps from a file or directory and exit")
	flag.Parse()

	ctx := context.Background()
	db := database.GetInstance()

	if err := db.CreateSchema(ctx); err != nil {
		logger.Fatal("Failed to create schema", gecho.Field("error", err))
	}

	sm := services.NewServiceManager(logger, cfg, db)

	// Seed the locale registry and the fixed vocabularies before
	// anything touches products
	if err := sm.LocaleService.Seed(ctx); err != nil {
		logger.Fatal("Failed to seed locales", gecho.Field("error", err))
	}
	if err := sm.TaxonomyService.SeedVocabularies(ctx); err != nil {
		logger.Fatal("Failed to seed vocabularies", gecho.Field("error", err))
	}

	// One-shot ingest mode
	if *ingestPath != "" {
		runIngest(ctx, sm, *ingestPath)
		return
	}

	r := api.App(cfg, sm)

	server := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        r,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	setupGracefulShutdown(server, logger)

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Failed to start server", gecho.Field("error", err))
	}
}

// runIngest loads vendor dumps from a file or directory and reports
// per-vendor results
func runIngest(ctx context.Context, sm *services.ServiceManager, path string) {
	info, err := os.Stat(path)
	if err != nil {
		logger.Fatal("Ingest path does not exist", gecho.Field("path", path), gecho.Field("error", err))
	}

	var results []services.IngestResult
	if info.IsDir() {
		results, err = sm.IngestService.IngestDir(ctx, path)
	} else {
		results, err = sm.IngestService.IngestFile(ctx, path)
	}
	if err != nil {
		logger.Fatal("Ingest failed", gecho.Field("error", err))
	}

	for _, res := range results {
		if res.Err != nil {
			logger.Error("Vendor ingest failed",
				gecho.Field("vendor", res.Vendor),
				gecho.Field("error", res.Err),
			)
			continue
		}
		logger.Info("Vendor ingested",
			gecho.Field("vendor", res.Vendor),
			gecho.Field("product_lines", res.ProductLines),
			gecho.Field("products", res.Products),
			gecho.Field("variants", res.Variants),
			gecho.Field("duration", res.Duration),
		)
	}
}

// setupGracefulShutdown sets up signal handling for graceful application shutdown
func setupGracefulShutdown(server *http.Server, logger *gecho.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	logger.Info("Graceful shutdown handler initialized")

	go func() {
		sig := <-c
		logger.Info("Received shutdown signal", gecho.Field("signal", sig))

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown failed", gecho.Field("error", err))
		}
		if err := database.CloseInstance(); err != nil {
			logger.Error("Database close failed", gecho.Field("error", err))
		}
		os.Exit(0)
	}()
}
