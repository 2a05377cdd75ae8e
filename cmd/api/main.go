package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizcraft/internal/adapter"
	"quizcraft/internal/adapter/llmgen"
	"quizcraft/internal/cache"
	"quizcraft/internal/config"
	"quizcraft/internal/domain"
	"quizcraft/internal/generator"
	"quizcraft/internal/handler"
	"quizcraft/internal/logger"
	"quizcraft/internal/middleware"
	"quizcraft/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		err := c.Next()

		// Log request details
		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Select the cache adapter: Redis when configured, otherwise an
	// in-process TTL cache.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		appLogger.Info("Redis not configured, using in-memory cache")
		cacheAdapter = adapter.NewMemoryCacheAdapter(cfg.Generation.CacheTTL, 10*time.Minute)
	}

	// Select the generator: the offline statistical engine by default, or
	// the LLM-backed implementation of the same contract when enabled.
	var questionGenerator domain.QuestionGenerator
	if cfg.LLM.Enabled {
		appLogger.Info("Initializing LLM question generator",
			zap.String("server_url", cfg.LLM.ServerURL),
			zap.String("model", cfg.LLM.Model))
		questionGenerator, err = llmgen.NewOllamaGenerator(cfg.LLM.ServerURL, cfg.LLM.Model, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create LLM question generator", zap.Error(err))
		}
	} else {
		questionGenerator = generator.NewEngine(cfg.Generation, generator.NewSystemRNG(), appLogger)
	}

	// Initialize services and handlers
	generationService := service.NewGenerationService(questionGenerator, cacheAdapter, cfg)
	appLogger.Info("GenerationService initialized")
	generationHandler := handler.NewGenerationHandler(generationService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	// Add request logging middleware
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := cacheAdapter.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API group
	apiGroup := app.Group("/api")
	apiGroup.Post("/questions/generate", generationHandler.GenerateQuestions)
	apiGroup.Post("/keywords/extract", generationHandler.ExtractKeywords)
	apiGroup.Post("/sentences/segment", generationHandler.SegmentSentences)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
