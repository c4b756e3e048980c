package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/SaifZeus/Heart-Failure/internal/domain"
	"github.com/SaifZeus/Heart-Failure/internal/model"
)

// Predictor runs validated patient records through the inference engine.
type Predictor struct {
	engine model.Engine
	repo   AssessmentRepository

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewPredictor creates a new predictor service
func NewPredictor(engine model.Engine, repo AssessmentRepository) *Predictor {
	return &Predictor{
		engine: engine,
		repo:   repo,
	}
}

// Engine exposes the active inference engine for presentation and health info.
func (s *Predictor) Engine() model.Engine {
	return s.engine
}

// Assess runs one inference call for the record. Predictions are never
// retried; any engine failure propagates as an inference error.
func (s *Predictor) Assess(ctx context.Context, rec domain.PatientRecord) (domain.PredictionResult, error) {
	probs, err := s.engine.PredictProbability(rec.FeatureVector())
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("predictor: inference failed: %w", err)
	}

	label := domain.LabelHealthy
	if probs[1] >= 0.5 {
		label = domain.LabelAtRisk
	}
	confidence := probs[0]
	if probs[1] > confidence {
		confidence = probs[1]
	}

	return domain.PredictionResult{
		AssessmentID:  uuid.New(),
		Label:         label,
		Confidence:    confidence,
		Probabilities: probs,
		Engine:        s.engine.Source(),
		Timestamp:     time.Now().UTC(),
	}, nil
}

// LogAssessment persists the assessment in the background so the response is
// not blocked on the database.
func (s *Predictor) LogAssessment(rec domain.PatientRecord, res domain.PredictionResult, tier domain.RiskTier) {
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveAssessment(ctx, rec, res, tier); err != nil {
			log.Warn().Err(err).Str("assessment_id", res.AssessmentID.String()).
				Msg("failed to save assessment log")
		}
	}()
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *Predictor) WaitBackground() {
	s.wgBg.Wait()
}
