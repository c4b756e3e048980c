package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SaifZeus/Heart-Failure/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, predictor *service.Predictor, presenter *service.Presenter, repo service.AssessmentRepository) {
	handler := NewHandler(predictor, presenter, repo)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Form schema for the single-page UI
		api.Get("/schema", handler.GetSchema)

		// Prediction endpoint
		api.Post("/predict", handler.Predict)

		// Assessment history
		api.Get("/assessments", handler.GetAssessments)
	}
}
