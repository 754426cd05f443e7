// File: tripmate/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripmate/config"
	"tripmate/handlers"
	"tripmate/middleware"
	"tripmate/routes"
	"tripmate/services/assistant"
	"tripmate/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetSessionCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	replyDelay := time.Duration(config.AppConfig.ChatReplyDelayMs) * time.Millisecond

	stateStore := assistant.NewRedisStateStore(utils.GetSessionCacheClient(), sessionTTL)
	sessionManager := assistant.NewSessionManager(
		stateStore,
		replyDelay,
		sessionTTL,
		config.AppConfig.ChatResolveAtSubmit,
	)
	sessionManager.StartJanitor(time.Minute)

	metrics := utils.NewMetrics("tripmate")
	chatHandler := handlers.NewChatHandler(sessionManager, metrics)
	bookingHandler := handlers.NewBookingHandler(sessionManager, stateStore)

	routes.RegisterRoutes(router, chatHandler, bookingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	sessionManager.Shutdown()
	logger.Sugar().Info("main: server stopped gracefully")
}
