package model

// Engine source tags reported in responses and logs.
const (
	SourceEnsemble = "ensemble"
	SourceBaseline = "baseline"
)

// Engine is a fitted binary classifier. PredictProbability takes a feature
// vector in the canonical order and returns the per-class probability vector
// [P(healthy), P(disease)], which always sums to 1. Implementations are
// read-only after construction and safe for concurrent use.
type Engine interface {
	PredictProbability(features []float64) ([]float64, error)
	FeatureNames() []string
	Importances() []float64
	Source() string
}
