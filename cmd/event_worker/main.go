package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vilohq/vilo-api/internal/config"
	"github.com/vilohq/vilo-api/internal/repository/postgres"
	"github.com/vilohq/vilo-api/internal/service"
	"github.com/vilohq/vilo-api/internal/service/pubsub"
	"github.com/vilohq/vilo-api/internal/service/queue"
	"github.com/vilohq/vilo-api/internal/worker"
	"github.com/vilohq/vilo-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	// Initialize PostgreSQL with database connections
	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	pgRepo := postgres.NewPostgresRepository(dbConnections)

	// Initialize Redis for the notification stream
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Booking effects run here, off the request path
	effects := service.NewBookingEffectsService(pgRepo, appLogger)
	effects.SetNotificationPublisher(redisPubSub)

	eventWorker := worker.NewEventWorker(
		sqsService,
		effects,
		appLogger,
		3,             // worker goroutines
		5*time.Second, // poll interval
	)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start worker
	go func() {
		appLogger.Info("Starting event worker...")
		eventWorker.Start()
	}()

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down event worker...")

	eventWorker.Stop()
	appLogger.Info("Event worker stopped")
	appLogger.Sync()
}
