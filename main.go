// main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/anmicius0/idea-validator/internal/client"
	"github.com/anmicius0/idea-validator/internal/config"
	"github.com/anmicius0/idea-validator/internal/server"
	"github.com/anmicius0/idea-validator/internal/service"
	"github.com/anmicius0/idea-validator/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Initialize logging first
	if err := utils.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer utils.Sync()

	appConfig, err := config.Load()
	if err != nil {
		utils.Logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	utils.Logger.Info("Configuration loaded successfully",
		zap.String(utils.FieldModel, appConfig.LLMModel),
		zap.String("llm_base_url", appConfig.LLMBaseURL))

	httpClient := client.NewHTTPClient(appConfig.LLMBaseURL, appConfig.LLMTimeout)
	defer httpClient.Close()
	validator := service.NewIdeaValidator(appConfig, client.NewChatClient(httpClient))

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(validator)
	startServer(router, appConfig)
}

// startServer binds the HTTP server and handles graceful shutdown signals.
func startServer(router http.Handler, appConfig *config.Config) {
	portStr := strconv.Itoa(appConfig.Port)
	addr := fmt.Sprintf("%s:%s", appConfig.APIHost, portStr)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  config.DefaultReadTimeout,
		WriteTimeout: config.DefaultWriteTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		utils.Logger.Info("Shutdown signal received", zap.String(utils.FieldSignal, sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			utils.Logger.Error("Server shutdown error", zap.Error(err))
		}
	}()

	utils.Logger.Info("Server starting",
		zap.String(utils.FieldHost, appConfig.APIHost),
		zap.String(utils.FieldPort, portStr))

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		utils.Logger.Fatal("Server failed to start", zap.Error(err))
	}

	utils.Logger.Info("Server stopped")
}
