package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaifZeus/Heart-Failure/internal/domain"
	"github.com/SaifZeus/Heart-Failure/internal/model"
)

func TestRiskTierFor_Thresholds(t *testing.T) {
	tests := []struct {
		pDisease float64
		want     domain.RiskTier
	}{
		{0.0, domain.RiskLow},
		{0.3999, domain.RiskLow},
		{0.40, domain.RiskMedium},
		{0.6999, domain.RiskMedium},
		{0.70, domain.RiskHigh},
		{1.0, domain.RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskTierFor(tt.pDisease), "pDisease=%v", tt.pDisease)
	}
}

func resultWith(probs []float64, label string) domain.PredictionResult {
	confidence := probs[0]
	if probs[1] > confidence {
		confidence = probs[1]
	}
	return domain.PredictionResult{
		AssessmentID:  uuid.New(),
		Label:         label,
		Confidence:    confidence,
		Probabilities: probs,
		Engine:        model.SourceBaseline,
		Timestamp:     time.Now().UTC(),
	}
}

func TestPresent_AtRisk(t *testing.T) {
	p := NewPresenter(model.NewBaselineEngine())

	out := p.Present(resultWith([]float64{0.1, 0.9}, domain.LabelAtRisk))

	assert.Equal(t, domain.LabelAtRisk, out.Label)
	assert.Equal(t, domain.RiskHigh, out.RiskTier)
	assert.Equal(t, 90.0, out.ConfidencePct)
	assert.Equal(t, "Heart Disease Risk Detected", out.Headline)
	assert.Contains(t, out.Recommendations[0], "cardiologist")
	assert.NotEmpty(t, out.Note)
	assert.Equal(t, model.SourceBaseline, out.Engine)
}

func TestPresent_Healthy(t *testing.T) {
	p := NewPresenter(model.NewBaselineEngine())

	out := p.Present(resultWith([]float64{0.94, 0.06}, domain.LabelHealthy))

	assert.Equal(t, domain.LabelHealthy, out.Label)
	assert.Equal(t, domain.RiskLow, out.RiskTier)
	assert.Equal(t, 94.0, out.ConfidencePct)
	assert.Equal(t, "Low Risk Detected", out.Headline)
	assert.Contains(t, out.Recommendations[0], "check-ups")
}

func TestPresent_Gauges(t *testing.T) {
	p := NewPresenter(model.NewBaselineEngine())

	out := p.Present(resultWith([]float64{0.25, 0.75}, domain.LabelAtRisk))
	require.Len(t, out.Gauges, 2)

	healthy := out.Gauges[0]
	assert.Equal(t, "Healthy Probability", healthy.Title)
	assert.Equal(t, 25.0, healthy.Value)
	assert.Equal(t, healthy.Value, healthy.Threshold)
	assert.Equal(t, 0.0, healthy.Min)
	assert.Equal(t, 100.0, healthy.Max)
	require.Len(t, healthy.Bands, 3)
	assert.Equal(t, 33.0, healthy.Bands[0].To)

	disease := out.Gauges[1]
	assert.Equal(t, "Heart Disease Probability", disease.Title)
	assert.Equal(t, 75.0, disease.Value)
}

func TestPresent_TopFactors(t *testing.T) {
	p := NewPresenter(model.NewBaselineEngine())

	out := p.Present(resultWith([]float64{0.5, 0.5}, domain.LabelAtRisk))
	require.Len(t, out.TopFactors, 8)

	for i := 1; i < len(out.TopFactors); i++ {
		assert.GreaterOrEqual(t, out.TopFactors[i-1].Importance, out.TopFactors[i].Importance)
	}
}
