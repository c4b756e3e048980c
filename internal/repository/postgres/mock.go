package postgres

import (
	"context"

	"github.com/SaifZeus/Heart-Failure/internal/domain"
)

// MockRepository implements domain.AssessmentRepository for testing/demo mode
type MockRepository struct{}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SaveAssessment is a no-op in mock mode
func (r *MockRepository) SaveAssessment(ctx context.Context, rec domain.PatientRecord, res domain.PredictionResult, tier domain.RiskTier) error {
	return nil
}

// RecentAssessments returns an empty history in mock mode
func (r *MockRepository) RecentAssessments(ctx context.Context, limit int) ([]domain.AssessmentLog, error) {
	return []domain.AssessmentLog{}, nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
