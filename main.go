// File: firstcut/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"firstcut/config"
	"firstcut/database"
	ledgerRepo "firstcut/database/repository/ledger"
	shopRepo "firstcut/database/repository/shop"
	"firstcut/handlers"
	"firstcut/middleware"
	"firstcut/routes"
	"firstcut/services/booking"
	"firstcut/services/ledger"
	"firstcut/services/shop"
	"firstcut/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories, seeded with the demo fixtures.
	shops := shopRepo.NewMemoryShopRepo(database.SeedShops()...)
	transactions := ledgerRepo.NewMemoryTransactionRepo(database.SeedTransactions()...)

	// services.
	ledgerEngine := &ledger.DefaultEngine{
		Shops:        shops,
		Transactions: transactions,
		Logger:       logger,
	}
	shopService := &shop.DefaultShopService{
		Repo:   shops,
		Logger: logger,
	}
	sessionTTL := time.Duration(config.AppConfig.BookingSessionTTL) * time.Minute
	bookingService := &booking.DefaultBookingService{
		Shops:    shops,
		Ledger:   ledgerEngine,
		Sessions: booking.NewSessionStore(sessionTTL),
		Logger:   logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		ShopRepo: shops,
		Auth:     handlers.NewAuthHandler(shopService),
		Shop:     handlers.NewShopHandler(shopService),
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Wallet:   handlers.NewWalletHandler(shopService, ledgerEngine),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
