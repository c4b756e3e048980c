package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SaifZeus/Heart-Failure/internal/domain"
)

// PostgresRepository implements domain.AssessmentRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// SaveAssessment persists one prediction request/response pair to PostgreSQL
func (r *PostgresRepository) SaveAssessment(ctx context.Context, rec domain.PatientRecord, res domain.PredictionResult, tier domain.RiskTier) error {
	query := `
		INSERT INTO assessments (
			id, age, sex, chest_pain_type, resting_bp, cholesterol, fasting_bs,
			resting_ecg, max_hr, exercise_angina, oldpeak, st_slope,
			label, confidence, p_healthy, p_disease, risk_tier, engine, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.pool.Exec(ctx, query,
		res.AssessmentID, rec.Age, rec.SexName(), rec.ChestPainName(), rec.RestingBP,
		rec.Cholesterol, rec.FastingBSName(), rec.RestingECGName(), rec.MaxHR,
		rec.ExerciseAnginaName(), rec.Oldpeak, rec.STSlopeName(),
		res.Label, res.Confidence, res.PHealthy(), res.PDisease(), string(tier),
		res.Engine, res.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save assessment: %w", err)
	}

	return nil
}

// RecentAssessments retrieves the most recent assessments from PostgreSQL
func (r *PostgresRepository) RecentAssessments(ctx context.Context, limit int) ([]domain.AssessmentLog, error) {
	query := `
		SELECT id, created_at, age, sex, chest_pain_type, resting_bp, cholesterol,
			   fasting_bs, resting_ecg, max_hr, exercise_angina, oldpeak, st_slope,
			   label, confidence, p_healthy, p_disease, risk_tier, engine
		FROM assessments
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query assessments: %w", err)
	}
	defer rows.Close()

	var results []domain.AssessmentLog
	for rows.Next() {
		var a domain.AssessmentLog
		err := rows.Scan(
			&a.ID, &a.CreatedAt, &a.Age, &a.Sex, &a.ChestPainType, &a.RestingBP,
			&a.Cholesterol, &a.FastingBS, &a.RestingECG, &a.MaxHR,
			&a.ExerciseAngina, &a.Oldpeak, &a.STSlope,
			&a.Label, &a.Confidence, &a.PHealthy, &a.PDisease, &a.RiskTier, &a.Engine,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan assessment row: %w", err)
		}
		results = append(results, a)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
