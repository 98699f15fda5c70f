package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wanderbook/config"
	"wanderbook/cron"
	"wanderbook/database"
	bookingRepoPkg "wanderbook/database/repository/booking"
	experienceRepoPkg "wanderbook/database/repository/experience"
	promoRepoPkg "wanderbook/database/repository/promo"
	"wanderbook/handlers"
	"wanderbook/middleware"
	"wanderbook/routes"
	"wanderbook/services/booking"
	"wanderbook/services/catalog"
	"wanderbook/services/notification"
	"wanderbook/services/promo"
	"wanderbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	experienceRepo := experienceRepoPkg.NewMongoExperienceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	promoRepo := promoRepoPkg.NewMongoPromoRepo()

	// services.
	promoEvaluator := &promo.DefaultEvaluator{Repo: promoRepo}

	experienceCache := catalog.NewRedisExperienceCache(utils.GetCacheClient(), 5*time.Minute)
	catalogService := &catalog.DefaultCatalogService{
		Repo:  experienceRepo,
		Cache: experienceCache,
	}

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer taskClient.Close()

	bookingService := &booking.DefaultBookingService{
		ExperienceRepo: experienceRepo,
		BookingRepo:    bookingRepo,
		Promo:          promoEvaluator,
		Cache:          experienceCache,
		Tasks:          taskClient,
	}

	// Background confirmation worker.
	cron.InitConfirmationWorker(notification.NewLogEmailSender())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Experience: handlers.NewExperienceHandler(catalogService, logger),
		Booking:    handlers.NewBookingHandler(bookingService, logger),
		Promo:      handlers.NewPromoHandler(promoEvaluator, logger),
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
