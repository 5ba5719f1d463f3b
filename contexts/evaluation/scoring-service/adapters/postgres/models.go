package postgresadapter

import (
	"time"

	"emprende/contexts/evaluation/scoring-service/domain/entities"
)

type criterionModel struct {
	CriterionID  string    `gorm:"column:criterion_id;primaryKey"`
	Code         string    `gorm:"column:code;uniqueIndex:idx_criteria_code"`
	Description  string    `gorm:"column:description"`
	Weight       float64   `gorm:"column:weight"`
	MaxScore     int       `gorm:"column:max_score"`
	DisplayOrder int       `gorm:"column:display_order;uniqueIndex:idx_criteria_order"`
	Active       bool      `gorm:"column:active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (criterionModel) TableName() string { return "evaluation_criteria" }

func criterionModelFromEntity(criterion entities.Criterion) criterionModel {
	return criterionModel{
		CriterionID:  criterion.CriterionID,
		Code:         criterion.Code,
		Description:  criterion.Description,
		Weight:       criterion.Weight,
		MaxScore:     criterion.MaxScore,
		DisplayOrder: criterion.Order,
		Active:       criterion.Active,
		CreatedAt:    criterion.CreatedAt,
		UpdatedAt:    criterion.UpdatedAt,
	}
}

func (m criterionModel) toEntity() entities.Criterion {
	return entities.Criterion{
		CriterionID: m.CriterionID,
		Code:        m.Code,
		Description: m.Description,
		Weight:      m.Weight,
		MaxScore:    m.MaxScore,
		Order:       m.DisplayOrder,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type evaluationModel struct {
	EvaluationID string    `gorm:"column:evaluation_id;primaryKey"`
	EvaluatorID  string    `gorm:"column:evaluator_id"`
	ApplicantID  string    `gorm:"column:applicant_id;uniqueIndex:idx_evaluations_applicant_criterion"`
	CriterionID  string    `gorm:"column:criterion_id;uniqueIndex:idx_evaluations_applicant_criterion"`
	Score        int       `gorm:"column:score"`
	Notes        string    `gorm:"column:notes"`
	EvaluatedAt  time.Time `gorm:"column:evaluated_at"`
}

func (evaluationModel) TableName() string { return "evaluations" }

func evaluationModelFromEntity(evaluation entities.Evaluation) evaluationModel {
	return evaluationModel{
		EvaluationID: evaluation.EvaluationID,
		EvaluatorID:  evaluation.EvaluatorID,
		ApplicantID:  evaluation.ApplicantID,
		CriterionID:  evaluation.CriterionID,
		Score:        evaluation.Score,
		Notes:        evaluation.Notes,
		EvaluatedAt:  evaluation.EvaluatedAt,
	}
}

func (m evaluationModel) toEntity() entities.Evaluation {
	return entities.Evaluation{
		EvaluationID: m.EvaluationID,
		EvaluatorID:  m.EvaluatorID,
		ApplicantID:  m.ApplicantID,
		CriterionID:  m.CriterionID,
		Score:        m.Score,
		Notes:        m.Notes,
		EvaluatedAt:  m.EvaluatedAt,
	}
}

// applicantRow is a read-only projection of the admissions context's
// applicants table; rankings only read it.
type applicantRow struct {
	ApplicantID   string    `gorm:"column:applicant_id"`
	FirstName     string    `gorm:"column:first_name"`
	LastName      string    `gorm:"column:last_name"`
	Email         string    `gorm:"column:email"`
	Municipality  string    `gorm:"column:municipality"`
	VentureName   string    `gorm:"column:venture_name"`
	ConvocationID string    `gorm:"column:convocation_id"`
	RegisteredAt  time.Time `gorm:"column:registered_at"`
}

func (applicantRow) TableName() string { return "applicants" }
