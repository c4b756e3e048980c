package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SaifZeus/Heart-Failure/internal/config"
	httpdelivery "github.com/SaifZeus/Heart-Failure/internal/delivery/http"
	"github.com/SaifZeus/Heart-Failure/internal/model"
	"github.com/SaifZeus/Heart-Failure/internal/repository/postgres"
	"github.com/SaifZeus/Heart-Failure/internal/service"
)

func main() {
	cfg := config.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var repo service.AssessmentRepository
	if cfg.DatabaseURL == "" {
		log.Info().Msg("no DATABASE_URL configured, assessment logging disabled")
		repo = postgres.NewMockRepository()
	} else if pool, err := pgxpool.New(ctx, cfg.DatabaseURL); err != nil {
		log.Warn().Err(err).Msg("could not connect to database, assessment logging disabled")
		repo = postgres.NewMockRepository()
	} else {
		defer pool.Close()
		log.Info().Msg("connected to PostgreSQL")
		repo = postgres.NewPostgresRepository(pool)
	}

	// Inference engine: trained artifact if available, baseline scorer otherwise
	var engine model.Engine
	booster, err := model.NewBoosterEngine(cfg.ModelPath, cfg.ModelMetaPath)
	if err != nil {
		log.Warn().Err(err).Msg("model artifact unavailable, serving with baseline engine")
		engine = model.NewBaselineEngine()
	} else {
		log.Info().Str("trained_at", booster.TrainedAt()).Msg("loaded trained model artifact")
		engine = booster
	}

	// Services
	predictor := service.NewPredictor(engine, repo)
	presenter := service.NewPresenter(engine)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Heart Failure Prediction API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	httpdelivery.SetupRoutes(app, predictor, presenter, repo)

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Warn().Err(err).Msg("server forced to shutdown")
	}
	predictor.WaitBackground()
	log.Info().Msg("server exited gracefully")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
