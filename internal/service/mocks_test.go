package service

import (
	"context"
	"sync/atomic"

	"github.com/SaifZeus/Heart-Failure/internal/domain"
)

// Compile-time check to ensure MockAssessmentRepository implements AssessmentRepository
var _ AssessmentRepository = (*MockAssessmentRepository)(nil)

// MockAssessmentRepository is a mock implementation of domain.AssessmentRepository.
type MockAssessmentRepository struct {
	SaveAssessmentFunc func(ctx context.Context, rec domain.PatientRecord, res domain.PredictionResult, tier domain.RiskTier) error

	SaveCallCount int32
}

func (m *MockAssessmentRepository) SaveAssessment(ctx context.Context, rec domain.PatientRecord, res domain.PredictionResult, tier domain.RiskTier) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveAssessmentFunc != nil {
		return m.SaveAssessmentFunc(ctx, rec, res, tier)
	}
	return nil
}

func (m *MockAssessmentRepository) RecentAssessments(ctx context.Context, limit int) ([]domain.AssessmentLog, error) {
	return []domain.AssessmentLog{}, nil
}

func (m *MockAssessmentRepository) Health(ctx context.Context) error {
	return nil
}

// stubEngine is a model.Engine with canned behavior for predictor tests.
type stubEngine struct {
	probs []float64
	err   error
}

func (s *stubEngine) PredictProbability(features []float64) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.probs, nil
}

func (s *stubEngine) FeatureNames() []string {
	return domain.FeatureNames
}

func (s *stubEngine) Importances() []float64 {
	out := make([]float64, len(domain.FeatureNames))
	for i := range out {
		out[i] = 1.0 / float64(len(out))
	}
	return out
}

func (s *stubEngine) Source() string { return "stub" }
