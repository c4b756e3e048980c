package domain

import (
	"time"

	"github.com/google/uuid"
)

// Prediction labels for the binary classifier.
const (
	LabelHealthy = "Healthy"
	LabelAtRisk  = "At Risk"
)

// RiskTier buckets the disease probability for display.
type RiskTier string

const (
	RiskLow    RiskTier = "Low"
	RiskMedium RiskTier = "Medium"
	RiskHigh   RiskTier = "High"
)

// PredictionResult is the raw output of one inference call.
type PredictionResult struct {
	AssessmentID  uuid.UUID `json:"assessment_id"`
	Label         string    `json:"label"`
	Confidence    float64   `json:"confidence"` // max class probability, [0,1]
	Probabilities []float64 `json:"probabilities"`
	Engine        string    `json:"engine"`
	Timestamp     time.Time `json:"timestamp"`
}

// PHealthy returns the probability of the negative (healthy) class.
func (r PredictionResult) PHealthy() float64 { return r.Probabilities[0] }

// PDisease returns the probability of the positive (heart disease) class.
func (r PredictionResult) PDisease() float64 { return r.Probabilities[1] }

// GaugeBand is one colored segment of a gauge dial.
type GaugeBand struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// Gauge carries the numeric parameters for one gauge chart.
type Gauge struct {
	Title     string      `json:"title"`
	Value     float64     `json:"value"`
	Suffix    string      `json:"suffix"`
	Min       float64     `json:"min"`
	Max       float64     `json:"max"`
	BarColor  string      `json:"bar_color"`
	Bands     []GaugeBand `json:"bands"`
	Threshold float64     `json:"threshold"`
}

// RiskFactor is one entry of the feature-importance chart.
type RiskFactor struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

// ClassProbabilities is the named probability pair shown to the user.
type ClassProbabilities struct {
	Healthy float64 `json:"healthy"`
	Disease float64 `json:"disease"`
}

// Assessment is the chart-ready response for one prediction request.
type Assessment struct {
	AssessmentID    string             `json:"assessment_id"`
	Label           string             `json:"label"`
	ConfidencePct   float64            `json:"confidence_pct"`
	RiskTier        RiskTier           `json:"risk_tier"`
	Probabilities   ClassProbabilities `json:"probabilities"`
	Gauges          []Gauge            `json:"gauges"`
	TopFactors      []RiskFactor       `json:"top_factors"`
	Headline        string             `json:"headline"`
	Recommendations []string           `json:"recommendations"`
	Note            string             `json:"note"`
	Engine          string             `json:"engine"`
	Timestamp       time.Time          `json:"timestamp"`
}

// AssessmentLog is one persisted assessment as returned by the history query.
type AssessmentLog struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Age            int       `json:"age"`
	Sex            string    `json:"sex"`
	ChestPainType  string    `json:"chest_pain_type"`
	RestingBP      int       `json:"resting_bp"`
	Cholesterol    int       `json:"cholesterol"`
	FastingBS      string    `json:"fasting_bs"`
	RestingECG     string    `json:"resting_ecg"`
	MaxHR          int       `json:"max_hr"`
	ExerciseAngina string    `json:"exercise_angina"`
	Oldpeak        float64   `json:"oldpeak"`
	STSlope        string    `json:"st_slope"`
	Label          string    `json:"label"`
	Confidence     float64   `json:"confidence"`
	PHealthy       float64   `json:"p_healthy"`
	PDisease       float64   `json:"p_disease"`
	RiskTier       string    `json:"risk_tier"`
	Engine         string    `json:"engine"`
}
