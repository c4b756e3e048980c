package model

import (
	"fmt"

	"github.com/SaifZeus/Heart-Failure/pkg/utils"
)

// Feature positions in the canonical vector.
const (
	idxAge = iota
	idxSex
	idxChestPain
	idxRestingBP
	idxCholesterol
	idxFastingBS
	idxRestingECG
	idxMaxHR
	idxExerciseAngina
	idxOldpeak
	idxSTSlope

	numFeatures
)

var baselineFeatureNames = []string{
	"Age", "Sex", "ChestPainType", "RestingBP", "Cholesterol", "FastingBS",
	"RestingECG", "MaxHR", "ExerciseAngina", "Oldpeak", "ST_Slope",
}

// Per-ordinal contributions for the enumerated features.
var (
	chestPainWeights  = []float64{0.6, 0.3, 0.15, 0} // Typical, Atypical, Non-Anginal, Asymptomatic
	restingECGWeights = []float64{0, 0.4, 0.3}       // Normal, ST-T Abnormality, LVH
	stSlopeWeights    = []float64{-0.3, 0.3, 0.6}    // Upsloping, Flat, Downsloping
)

// Relative weight of each feature in the fallback score, normalized to sum 1.
var baselineImportances = []float64{
	0.14, // Age
	0.06, // Sex
	0.10, // ChestPainType
	0.09, // RestingBP
	0.08, // Cholesterol
	0.04, // FastingBS
	0.05, // RestingECG
	0.14, // MaxHR
	0.10, // ExerciseAngina
	0.13, // Oldpeak
	0.07, // ST_Slope
}

// BaselineEngine is a fixed logistic risk scorer over the eleven clinical
// features. It serves predictions when no trained artifact is available, the
// same way the backend falls back to mock data when a dependency is down.
type BaselineEngine struct{}

// NewBaselineEngine creates the fallback engine.
func NewBaselineEngine() *BaselineEngine {
	return &BaselineEngine{}
}

// PredictProbability scores the feature vector against the fixed clinical
// weights and returns [P(healthy), P(disease)].
func (e *BaselineEngine) PredictProbability(features []float64) ([]float64, error) {
	if len(features) != numFeatures {
		return nil, fmt.Errorf("model: expected %d features, got %d", numFeatures, len(features))
	}

	cp, err := ordinalWeight("chest pain type", chestPainWeights, features[idxChestPain])
	if err != nil {
		return nil, err
	}
	ecg, err := ordinalWeight("resting ECG", restingECGWeights, features[idxRestingECG])
	if err != nil {
		return nil, err
	}
	slope, err := ordinalWeight("ST slope", stSlopeWeights, features[idxSTSlope])
	if err != nil {
		return nil, err
	}

	z := -1.3
	z += (features[idxAge] - 50) * 0.04
	z += features[idxSex] * 0.6
	z += cp
	z += (features[idxRestingBP] - 120) * 0.015
	z += (features[idxCholesterol] - 200) * 0.004
	z += features[idxFastingBS] * 0.4
	z += ecg
	z += (150 - features[idxMaxHR]) * 0.02
	z += features[idxExerciseAngina] * 0.7
	z += features[idxOldpeak] * 0.25
	z += slope

	p := utils.Sigmoid(z)
	return []float64{1 - p, p}, nil
}

// FeatureNames returns the canonical feature order.
func (e *BaselineEngine) FeatureNames() []string {
	return baselineFeatureNames
}

// Importances returns the relative weight of each feature, summing to 1.
func (e *BaselineEngine) Importances() []float64 {
	return baselineImportances
}

// Source identifies this engine in responses and logs.
func (e *BaselineEngine) Source() string {
	return SourceBaseline
}

func ordinalWeight(name string, weights []float64, ordinal float64) (float64, error) {
	i := int(ordinal)
	if i < 0 || i >= len(weights) || float64(i) != ordinal {
		return 0, fmt.Errorf("model: invalid %s ordinal %v", name, ordinal)
	}
	return weights[i], nil
}
