package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecstazane/zane-crud2/dependency"
	"go.uber.org/zap"
)

func main() {
	container, err := dependency.NewContainer()
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing dependencies: %w", err))
	}
	defer func() {
		if err := container.Shutdown(); err != nil {
			log.Printf("error shutting down dependencies: %v", err)
		}
	}()

	router := container.SetupRouter()

	srv := &http.Server{
		Addr:           container.Config.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	go func() {
		container.Logger.Info("Server starting",
			zap.String("port", container.Config.Server.InternalPort),
			zap.String("mode", container.Config.Server.RunMode),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		container.Logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	container.Logger.Info("Server exited successfully")
}
