package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitryikh/leaves"

	"github.com/SaifZeus/Heart-Failure/pkg/utils"
)

// ensembleMeta is the sidecar written by scripts/train_model.py next to the
// model file.
type ensembleMeta struct {
	FeatureNames []string  `json:"feature_names"`
	Importances  []float64 `json:"feature_importances"`
	TrainedAt    string    `json:"trained_at,omitempty"`
}

// BoosterEngine serves a pre-trained LightGBM tree ensemble loaded once at
// startup. Inference is a single library call per request.
type BoosterEngine struct {
	ensemble    *leaves.Ensemble
	names       []string
	importances []float64
	trainedAt   string
}

// NewBoosterEngine loads the model artifact and its metadata sidecar. It
// fails fast when either file is missing or inconsistent; the caller decides
// whether to fall back to the baseline engine.
func NewBoosterEngine(modelPath, metaPath string) (*BoosterEngine, error) {
	ensemble, err := leaves.LGEnsembleFromFile(modelPath, true)
	if err != nil {
		return nil, fmt.Errorf("model: failed to load ensemble from %s: %w", modelPath, err)
	}

	raw, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("model: failed to read model metadata %s: %w", metaPath, err)
	}
	var meta ensembleMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("model: failed to parse model metadata %s: %w", metaPath, err)
	}

	if len(meta.FeatureNames) != ensemble.NFeatures() {
		return nil, fmt.Errorf("model: metadata lists %d features but ensemble expects %d",
			len(meta.FeatureNames), ensemble.NFeatures())
	}
	if len(meta.Importances) != len(meta.FeatureNames) {
		return nil, fmt.Errorf("model: metadata has %d importances for %d features",
			len(meta.Importances), len(meta.FeatureNames))
	}

	return &BoosterEngine{
		ensemble:    ensemble,
		names:       meta.FeatureNames,
		importances: normalize(meta.Importances),
		trainedAt:   meta.TrainedAt,
	}, nil
}

// PredictProbability runs the ensemble on the feature vector and returns
// [P(healthy), P(disease)].
func (e *BoosterEngine) PredictProbability(features []float64) ([]float64, error) {
	if len(features) != e.ensemble.NFeatures() {
		return nil, fmt.Errorf("model: expected %d features, got %d", e.ensemble.NFeatures(), len(features))
	}

	// The binary objective transformation is loaded with the model, so the
	// raw prediction is already the positive-class probability.
	p := utils.Clamp(e.ensemble.PredictSingle(features, 0), 0, 1)
	return []float64{1 - p, p}, nil
}

// FeatureNames returns the feature order the ensemble was trained with.
func (e *BoosterEngine) FeatureNames() []string {
	return e.names
}

// Importances returns the trained feature importances, normalized to sum 1.
func (e *BoosterEngine) Importances() []float64 {
	return e.importances
}

// Source identifies this engine in responses and logs.
func (e *BoosterEngine) Source() string {
	return SourceEnsemble
}

// TrainedAt reports when the artifact was produced, if recorded.
func (e *BoosterEngine) TrainedAt() string {
	return e.trainedAt
}

func normalize(values []float64) []float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	if sum == 0 {
		return values
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / sum
	}
	return out
}
