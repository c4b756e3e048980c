package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/SaifZeus/Heart-Failure/internal/domain"
	"github.com/SaifZeus/Heart-Failure/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	predictor *service.Predictor
	presenter *service.Presenter
	repo      service.AssessmentRepository
}

// NewHandler creates a new handler
func NewHandler(predictor *service.Predictor, presenter *service.Presenter, repo service.AssessmentRepository) *Handler {
	return &Handler{
		predictor: predictor,
		presenter: presenter,
		repo:      repo,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	database := "ok"
	if err := h.repo.Health(c.Context()); err != nil {
		database = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "heart-failure-backend",
		"version":  "1.0.0",
		"engine":   h.predictor.Engine().Source(),
		"database": database,
	})
}

// GetSchema returns the form field definitions for the single-page UI
func (h *Handler) GetSchema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    domain.FormSchema(),
	})
}

// Predict validates the submitted fields, runs one inference call, and
// returns the chart-ready assessment
func (h *Handler) Predict(c *fiber.Ctx) error {
	var in domain.PatientInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	rec, fieldErrs := domain.NewPatientRecord(in)
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Validation failed",
			"fields":  fieldErrs,
		})
	}

	res, err := h.predictor.Assess(c.Context(), rec)
	if err != nil {
		log.Error().Err(err).Msg("prediction failed")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get prediction")
	}

	assessment := h.presenter.Present(res)

	// Log assessment to database asynchronously
	h.predictor.LogAssessment(rec, res, assessment.RiskTier)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    assessment,
	})
}

// GetAssessments returns recent persisted assessments
func (h *Handler) GetAssessments(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	data, err := h.repo.RecentAssessments(c.Context(), limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assessment history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}
