package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentify/config"
	"rentify/database"
	bookingRepo "rentify/database/repository/booking"
	memoryRepo "rentify/database/repository/memory"
	rentalRepo "rentify/database/repository/rental"
	"rentify/handlers"
	"rentify/middleware"
	"rentify/models"
	"rentify/routes"
	"rentify/services/booking"
	"rentify/utils"
	"rentify/worker"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	start, end, err := config.AppConfig.AvailabilityWindow()
	if err != nil {
		logger.Fatal("main: invalid availability window", zap.Error(err))
	}
	window, err := models.NewInterval(models.DateOf(start), models.DateOf(end))
	if err != nil {
		logger.Fatal("main: invalid availability window", zap.Error(err))
	}

	// repositories.
	var (
		rentals     rentalRepo.RentalRepository
		bookings    bookingRepo.BookingRepository
		mongoClient *mongo.Client
	)
	switch config.AppConfig.StoreBackend {
	case "memory":
		store := memoryRepo.New()
		rentals, bookings = store, store.Bookings()
		logger.Warn("main: using in-memory store, data is lost on restart")
	default:
		if err := database.InitDB(rootCtx); err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		mongoClient = database.MongoClient
		mongoRentals := rentalRepo.NewMongoRentalRepo(database.Database())
		if err := mongoRentals.EnsureIndexes(rootCtx); err != nil {
			logger.Fatal("main: failed to ensure rental indexes", zap.Error(err))
		}
		rentals, bookings = mongoRentals, bookingRepo.NewMongoBookingRepo(database.Database())
	}

	// services.
	bookingService := booking.NewDefaultBookingService(rentals, bookings, window, logger)
	bookingService.MaxAttempts = config.AppConfig.BookingMaxAttempts

	var confirmationWorker *asynq.Server
	var publisher *worker.AsynqPublisher
	if err := utils.InitRedis(); err != nil {
		logger.Warn("main: Redis unavailable, idempotency and confirmations disabled", zap.Error(err))
	} else if utils.CacheClient != nil {
		bookingService.Idempotency = &booking.RedisIdempotencyStore{
			Client: utils.CacheClient,
			TTL:    config.AppConfig.IdempotencyTTL(),
		}

		queueOpts := asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}
		publisher = worker.NewAsynqPublisher(queueOpts)
		bookingService.Publisher = publisher
		confirmationWorker = worker.InitConfirmationWorker(queueOpts, logger)
	}

	utils.StartHealthMonitor(rootCtx, utils.RedisClients(), mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(bookingService))

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if confirmationWorker != nil {
		confirmationWorker.Shutdown()
	}
	if publisher != nil {
		_ = publisher.Close()
	}
	if err := database.Close(ctx); err != nil {
		logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
