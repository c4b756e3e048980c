package service

import (
	"github.com/SaifZeus/Heart-Failure/internal/domain"
)

// AssessmentRepository is re-exported from domain for convenience
type AssessmentRepository = domain.AssessmentRepository
