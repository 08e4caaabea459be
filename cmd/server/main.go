package main

import (
	"context"
	"errors"
	"gamestore/backend/internal/config"
	"gamestore/backend/internal/database"
	"gamestore/backend/internal/handler"
	"gamestore/backend/internal/hub"
	"gamestore/backend/internal/logging"
	"gamestore/backend/internal/store"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	// Swagger imports
	_ "gamestore/backend/docs" // This is important for swag to find the generated docs
)

// @title           Game Store API
// @version         1.0
// @description     CRUD API for a catalog of video games and their genres.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Unable to load configuration: %v", err)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("Unable to configure logging: %v", err)
	}
	gin.SetMode(cfg.GinMode)
	// Prices are written as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	st, err := newStore(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	router := handler.NewRouter(st, hub.NewHub(), log)

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("Server is running on %s", cfg.ServerAddr)
	log.Infof("Swagger UI is available at http://localhost%s/swagger/index.html", cfg.ServerAddr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %+v", err)
	}
	log.Info("Server gracefully stopped")
}

// newStore builds the store selected by DB_DRIVER.
func newStore(cfg *config.Config, log *logrus.Logger) (store.Store, error) {
	if cfg.DBDriver == config.DriverMemory {
		games := store.SeedGames()
		if !cfg.SeedGames {
			games = nil
		}
		log.Info("Using in-memory store; data is lost on restart.")
		return store.NewMemoryStore(store.SeedGenres(), games), nil
	}

	db, err := database.Connect(cfg, log, logging.GormLogger(log))
	if err != nil {
		return nil, err
	}
	return store.NewGormStore(db), nil
}
