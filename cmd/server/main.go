package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charlles-dev/Unity-Bank/configs"
	"github.com/charlles-dev/Unity-Bank/internal/handlers"
	"github.com/charlles-dev/Unity-Bank/internal/ledger"
	"github.com/charlles-dev/Unity-Bank/internal/logger"
	"github.com/charlles-dev/Unity-Bank/internal/routes"
	"github.com/charlles-dev/Unity-Bank/internal/seed"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	configs.LoadConfig()

	registry := ledger.NewRegistry(configs.AppConfig.Bank.Name)
	if configs.AppConfig.Bank.Seed {
		seed.Run(registry)
	}

	tellerHash, err := bcrypt.GenerateFromPassword([]byte(configs.AppConfig.Teller.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Fatal("failed to hash teller password", zap.Error(err))
	}

	h := handlers.New(registry, configs.AppConfig.Teller.Name, tellerHash)
	router := routes.NewRoutes(h)

	srv := &http.Server{
		Addr:         configs.AppConfig.Server.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info("HTTP server listening",
			zap.String("addr", srv.Addr),
			zap.String("bank", registry.Name()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("graceful shutdown failed", zap.Error(err))
	}

	logger.Log.Info("server stopped")
}
