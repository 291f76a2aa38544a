package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"innkeep/config"
	"innkeep/cron"
	"innkeep/database"
	bookingRepo "innkeep/database/repository/booking"
	catalogRepo "innkeep/database/repository/catalog"
	paymentRepo "innkeep/database/repository/payment"
	"innkeep/handlers"
	"innkeep/middleware"
	"innkeep/routes"
	"innkeep/services/booking"
	"innkeep/services/payment"
	"innkeep/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()

	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitRedis()

	catalog := catalogRepo.NewCachedCatalogRepo(catalogRepo.NewMongoCatalogRepo(), utils.GetCacheClient())
	bookings := bookingRepo.NewMongoBookingRepo()
	methods := paymentRepo.NewMongoPaymentMethodRepo()

	gateway := payment.NewHTTPGateway(config.IsLiveGateway(), logger)
	sessions := booking.NewRedisSessionStore()
	reminders := cron.NewReminderClient()
	cron.InitPaymentReminderWorker(bookings)

	service := &booking.DefaultBookingService{
		Catalog:    catalog,
		Bookings:   bookings,
		Methods:    methods,
		Gateway:    gateway,
		Sessions:   sessions,
		Reminders:  reminders,
		ReturnBase: config.AppConfig.PublicBaseURL,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, routes.Handlers{
		Rooms:   handlers.NewRoomHandler(catalog, service),
		Booking: handlers.NewBookingHandler(service),
		Payment: handlers.NewPaymentHandler(service, methods),
		Admin:   handlers.NewAdminHandler(service, catalog),
	})

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Forced shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
