// Package main is the entry point of the fee service.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acquiring/internal/config"
	"acquiring/internal/events"
	"acquiring/internal/handlers"
	"acquiring/internal/logging"
	"acquiring/internal/middleware"
	"acquiring/internal/repositories"
	"acquiring/internal/repositories/audit"
	"acquiring/internal/repositories/cache"
	"acquiring/internal/routes"
	"acquiring/internal/services/assignment"
	"acquiring/internal/services/feestructure"
	"acquiring/internal/services/pricing"
	"acquiring/internal/services/quote"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// PostgreSQL
	db, err := repositories.Connect(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := repositories.Ping(ctx, db); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}
	logger.Info("connected to database")

	// Redis
	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	cacheService := cache.NewCacheService(redisClient, cfg.CacheTTL)
	if err := cacheService.HealthCheck(ctx); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	logger.Info("connected to redis")

	// MongoDB
	mongoClient, err := audit.Connect(ctx, audit.MongoConfig{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	quoteLog, err := audit.NewMongoQuoteLog(ctx, mongoClient.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
	if err != nil {
		logger.Fatal("failed to prepare quote log", zap.Error(err))
	}
	logger.Info("connected to mongodb")

	defer func() {
		if err := repositories.Close(db); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
		if err := cacheService.Close(); err != nil {
			logger.Warn("failed to close redis connection", zap.Error(err))
		}
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Warn("failed to close mongodb connection", zap.Error(err))
		}
	}()

	// Repositories
	structureRepo := repositories.NewFeeStructureRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)
	planRepo := repositories.NewPricingPlanRepository(db)

	// Services
	defaultPlan, err := pricing.DefaultPlan(cfg.DefaultPlan)
	if err != nil {
		logger.Fatal("invalid default pricing plan", zap.Error(err))
	}
	publisher := events.NewEventPublisher(redisClient, cfg.EventsChannel, logger)

	structureService := feestructure.NewService(structureRepo, assignmentRepo, cacheService, logger)
	assignmentService := assignment.NewService(structureRepo, assignmentRepo, cacheService, publisher, logger)
	pricingService := pricing.NewService(planRepo, defaultPlan, logger)
	quoteService := quote.NewService(assignmentService, pricingService, quoteLog, logger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:     "acquiring-fees",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.OperatorHeader,
		AllowMethods: "GET,POST,HEAD,PUT",
	}))
	app.Use(middleware.RequestLogger(logger))

	app.Use("/api/v1/merchants", limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	// Routes
	routes.SetupRoutes(app, routes.Handlers{
		Health: handlers.NewHealthHandler(map[string]handlers.Checker{
			"database": func(ctx context.Context) error { return repositories.Ping(ctx, db) },
			"redis":    cacheService.HealthCheck,
			"mongodb":  func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		}).WithStats("redis_pool", cacheService.GetStats),
		FeeStructures: handlers.NewFeeStructureHandler(structureService),
		Assignments:   handlers.NewAssignmentHandler(assignmentService),
		Pricing:       handlers.NewPricingHandler(pricingService),
		Quotes:        handlers.NewQuoteHandler(quoteService),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	// Start server
	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
