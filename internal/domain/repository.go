package domain

import (
	"context"
)

// AssessmentRepository defines the interface for assessment persistence.
// This follows the Dependency Inversion Principle - domain defines the interface
type AssessmentRepository interface {
	// SaveAssessment persists one prediction request/response pair
	SaveAssessment(ctx context.Context, rec PatientRecord, res PredictionResult, tier RiskTier) error

	// RecentAssessments retrieves the most recent persisted assessments
	RecentAssessments(ctx context.Context, limit int) ([]AssessmentLog, error)

	// Health checks database connectivity
	Health(ctx context.Context) error
}
