package service

import (
	"sort"

	"github.com/SaifZeus/Heart-Failure/internal/domain"
	"github.com/SaifZeus/Heart-Failure/internal/model"
	"github.com/SaifZeus/Heart-Failure/pkg/utils"
)

// Risk tier thresholds on the disease-class probability.
const (
	riskHighThreshold   = 0.70
	riskMediumThreshold = 0.40
)

// Gauge colors, matching the dashboard theme.
const (
	colorHealthy = "#48bb78"
	colorDisease = "#f56565"

	bandLowColor    = "rgba(72, 187, 120, 0.3)"
	bandMediumColor = "rgba(237, 137, 54, 0.3)"
	bandHighColor   = "rgba(245, 101, 101, 0.3)"
)

const maxTopFactors = 8

const advisoryNote = "This prediction is based on machine learning algorithms and should not " +
	"replace professional medical advice. Always consult with healthcare professionals for " +
	"accurate diagnosis and treatment."

var atRiskRecommendations = []string{
	"Schedule an appointment with a cardiologist immediately",
	"Undergo comprehensive cardiovascular screening",
	"Discuss lifestyle modifications and treatment options",
	"Monitor vital signs regularly",
}

var healthyRecommendations = []string{
	"Continue regular health check-ups",
	"Maintain a healthy lifestyle with proper diet and exercise",
	"Monitor blood pressure and cholesterol levels",
	"Stay informed about cardiovascular health",
}

// RiskTierFor buckets the disease probability for display.
func RiskTierFor(pDisease float64) domain.RiskTier {
	switch {
	case pDisease >= riskHighThreshold:
		return domain.RiskHigh
	case pDisease >= riskMediumThreshold:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// Presenter maps prediction results to chart-ready display data. Pure and
// deterministic; the engine is only consulted for feature importances.
type Presenter struct {
	engine model.Engine
}

// NewPresenter creates a new presenter
func NewPresenter(engine model.Engine) *Presenter {
	return &Presenter{engine: engine}
}

// Present builds the full response payload for one prediction result.
func (p *Presenter) Present(res domain.PredictionResult) domain.Assessment {
	tier := RiskTierFor(res.PDisease())

	headline := "Low Risk Detected"
	recommendations := healthyRecommendations
	if res.Label == domain.LabelAtRisk {
		headline = "Heart Disease Risk Detected"
		recommendations = atRiskRecommendations
	}

	return domain.Assessment{
		AssessmentID:  res.AssessmentID.String(),
		Label:         res.Label,
		ConfidencePct: utils.RoundTo(res.Confidence*100, 1),
		RiskTier:      tier,
		Probabilities: domain.ClassProbabilities{
			Healthy: utils.RoundTo(res.PHealthy(), 4),
			Disease: utils.RoundTo(res.PDisease(), 4),
		},
		Gauges: []domain.Gauge{
			buildGauge("Healthy Probability", res.PHealthy(), colorHealthy),
			buildGauge("Heart Disease Probability", res.PDisease(), colorDisease),
		},
		TopFactors:      p.topFactors(),
		Headline:        headline,
		Recommendations: recommendations,
		Note:            advisoryNote,
		Engine:          res.Engine,
		Timestamp:       res.Timestamp,
	}
}

// buildGauge produces the numeric parameters for one probability gauge.
func buildGauge(title string, probability float64, barColor string) domain.Gauge {
	value := utils.RoundTo(utils.Clamp(probability, 0, 1)*100, 1)
	return domain.Gauge{
		Title:    title,
		Value:    value,
		Suffix:   "%",
		Min:      0,
		Max:      100,
		BarColor: barColor,
		Bands: []domain.GaugeBand{
			{From: 0, To: 33, Color: bandLowColor},
			{From: 33, To: 66, Color: bandMediumColor},
			{From: 66, To: 100, Color: bandHighColor},
		},
		Threshold: value,
	}
}

// topFactors returns the highest-importance features, descending.
func (p *Presenter) topFactors() []domain.RiskFactor {
	names := p.engine.FeatureNames()
	importances := p.engine.Importances()

	factors := make([]domain.RiskFactor, 0, len(names))
	for i, name := range names {
		factors = append(factors, domain.RiskFactor{
			Name:       name,
			Importance: utils.RoundTo(importances[i], 4),
		})
	}
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Importance > factors[j].Importance
	})

	if len(factors) > maxTopFactors {
		factors = factors[:maxTopFactors]
	}
	return factors
}
