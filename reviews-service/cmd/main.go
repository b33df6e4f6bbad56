package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reviewsapi/pkg/logger"
	"reviewsapi/reviews-service/internal/app/reviews/config"
	"reviewsapi/reviews-service/internal/app/reviews/entity"
	"reviewsapi/reviews-service/internal/app/reviews/handler"
	"reviewsapi/reviews-service/internal/app/reviews/infrastructure"
	"reviewsapi/reviews-service/internal/app/reviews/infrastructure/messaging"
	"reviewsapi/reviews-service/internal/app/reviews/repository"
	"reviewsapi/reviews-service/internal/app/reviews/service"
)

const serviceName = "reviews-service"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(serviceName, cfg.Log.Level)

	if cfg.Log.LogstashAddr != "" {
		if err := logger.InitLogstash(cfg.Log.LogstashAddr, serviceName, cfg.Log.Level); err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Logstash, using stdout only")
		} else {
			logger.Info().Str("logstash_addr", cfg.Log.LogstashAddr).Msg("Connected to Logstash")
		}
	}

	// Файл нужен всегда: это и основное хранилище, и запасное для MongoDB
	fileRepo, err := repository.NewFileReviewRepository(cfg.Storage.ReviewsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize reviews file")
	}
	logger.Info().Str("path", fileRepo.Path()).Msg("Using reviews file")

	var (
		mongoClient *mongo.Client
		mongoRepo   repository.ReviewRepository
	)
	if cfg.PrimaryBackend() == entity.BackendMongoDB {
		mongoClient, err = mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoDB.URI))
		if err != nil {
			logger.Error().Err(err).Msg("MongoDB client setup failed, serving from file")
		} else {
			mongoRepo = repository.NewMongoReviewRepository(mongoClient.Database(cfg.MongoDB.Database))
		}
	}

	selector := repository.NewBackendSelector(cfg.PrimaryBackend(), fileRepo, mongoRepo)

	if mongoClient != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := mongoClient.Disconnect(ctx); err != nil {
				logger.Error().Err(err).Msg("Error disconnecting from MongoDB")
			}
		}()

		go confirmMongoDB(mongoClient, cfg.MongoDB, selector)
	}

	var publisher infrastructure.MessagePublisher
	if cfg.KafkaEnabled() {
		kafkaProducer := messaging.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaProducer.Close()
		publisher = kafkaProducer
		logger.Info().
			Str("topic", cfg.Kafka.Topic).
			Msg("Initialized Kafka producer")
	}

	reviewService := service.NewReviewService(selector, publisher)
	reviewHandler := handler.NewReviewHandler(reviewService)
	router := handler.SetupRoutes(reviewHandler)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("backend", cfg.Storage.Backend).
			Msg("Starting Reviews Service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down Reviews Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Reviews Service stopped gracefully")
}

// confirmMongoDB проверяет подключение к MongoDB один раз, без повторов
// До успешного ping запросы обслуживает файл; при ошибке сервис так и остается на файле
func confirmMongoDB(client *mongo.Client, cfg config.MongoDBConfig, selector *repository.BackendSelector) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Error().
			Err(err).
			Dur("timeout", cfg.ConnectTimeout).
			Msg("MongoDB connection error, serving from file")
		return
	}

	selector.MarkPrimaryReady()
	logger.Info().
		Str("database", cfg.Database).
		Msg("Connected to MongoDB")
}
