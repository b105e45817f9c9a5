package app

import (
	"context"
	"food-wastage-api/internal/config"
	"food-wastage-api/internal/controller"
	"food-wastage-api/internal/repo"
	"food-wastage-api/internal/service"
	"food-wastage-api/migrations"
	"food-wastage-api/pkg/http_server"
	"food-wastage-api/pkg/sqlite"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error occurred while loading config: %v", err)
	}

	log.Println("Connecting database...")
	sqliteDB, err := sqlite.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Error occurred while connecting to db: %v", err)
	}
	defer sqliteDB.Close()

	log.Println("Running migrations...")
	if err = migrations.Up(sqliteDB.Database); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	repositories := repo.NewRepositories(sqliteDB)
	services := service.NewServices(repositories, service.Options{
		DataDir:          cfg.DataDir,
		SynthesizeClaims: cfg.SynthesizeClaims,
		SyntheticSeed:    cfg.SyntheticSeed,
	})

	log.Printf("Loading dataset from %s...", cfg.DataDir)
	status, err := services.Dataset.Reload(context.Background())
	if err != nil {
		log.Fatalf("Dataset load error: %v", err)
	}
	log.Printf("Dataset loaded: %d providers, %d receivers, %d food listings, %d claims",
		status.Counts.Providers, status.Counts.Receivers, status.Counts.FoodListings, status.Counts.Claims)

	handler := echo.New()
	handler.HideBanner = true
	handler.Use(middleware.Logger())
	handler.Use(middleware.Recover())

	log.Println("Setup routes...")
	controller.SetupRoutesHandlers(handler, services)

	log.Println("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress, cfg.ShutdownTimeout)

	log.Println("Ready to process requests on " + cfg.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Printf("Notify error: %v", err)
	}

	log.Println("Shutting down...")
	if err = httpServer.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	} else {
		log.Println("Successful shutdown")
	}
}
