package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	catalogrepo "github.com/merqado/storefront/internal/catalog/repository"
	dashboardrepo "github.com/merqado/storefront/internal/dashboard/repository"
	"github.com/merqado/storefront/internal/graphql"
	orderrepo "github.com/merqado/storefront/internal/order/repository"
	ordercommand "github.com/merqado/storefront/internal/order/usecase/command"
	userrepo "github.com/merqado/storefront/internal/user/repository"
	"github.com/merqado/storefront/kafka"
	"github.com/merqado/storefront/pkg/database"
	"github.com/merqado/storefront/pkg/logger"
	"github.com/merqado/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-api")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront API")

	// Initialize tracer
	jaegerEndpoint := getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	tp, err := tracing.InitTracer(serviceName, jaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storefrontdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database with GORM
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Separate raw connection for the QA dashboard tables
	dashboardDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dashboardDB.Close()

	// Initialize repositories and run migrations
	catalogRepo := catalogrepo.NewGormCatalogRepositoryWithTracing(db)
	orderRepo := orderrepo.NewGormOrderRepository(db)
	userRepo := userrepo.NewGormUserRepository(db)
	dashboardRepo := dashboardrepo.NewPostgresTestRunRepository(dashboardDB)

	if err := catalogRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	if err := orderRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	if err := userRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	if err := dashboardRepo.InitSchema(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to init dashboard schema")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher for order events (optional)
	var publisher ordercommand.OrderEventPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaPublisher, err := kafka.NewPublisher([]string{brokers})
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to Kafka, order events disabled")
		} else {
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
			logger.Logger.Info().Str("brokers", brokers).Msg("Kafka publisher initialized")
		}
	}

	// Build the GraphQL schema
	resolver := graphql.NewResolver(catalogRepo, orderRepo, userRepo, dashboardRepo, publisher)
	schema, err := graphql.NewSchema(resolver)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to build schema")
	}
	handler := graphql.NewHandler(schema)

	// Setup router
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, sqlDB)
	router.Handle("/metrics", promhttp.Handler())

	// Rate limiting (optional, requires Redis)
	var chain http.Handler = graphql.AuthMiddleware(router)
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})
		maxRequests := getEnvInt("RATE_LIMIT_MAX", 100)
		window := time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second
		limiter := graphql.NewRateLimiter(redisClient, maxRequests, window)
		chain = graphql.AuthMiddleware(limiter.Middleware(router))
		logger.Logger.Info().
			Str("redis", redisAddr).
			Int("max_requests", maxRequests).
			Msg("Rate limiter enabled")
	}

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: c.Handler(chain),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Msg("HTTP server starting, GraphQL at /graphql, metrics at /metrics")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
