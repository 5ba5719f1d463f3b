package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"emprende/contexts/evaluation/scoring-service/domain/entities"
	domainerrors "emprende/contexts/evaluation/scoring-service/domain/errors"
	"emprende/contexts/evaluation/scoring-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) ListCriteria(ctx context.Context, activeOnly bool) ([]entities.Criterion, error) {
	tx := r.db.WithContext(ctx).Model(&criterionModel{})
	if activeOnly {
		tx = tx.Where("active = ?", true)
	}
	var rows []criterionModel
	if err := tx.Order("display_order ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("scoring_repo_list_criteria_failed", err)
	}
	items := make([]entities.Criterion, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetCriterion(ctx context.Context, criterionID string) (entities.Criterion, error) {
	var row criterionModel
	err := r.db.WithContext(ctx).
		Where("criterion_id = ?", strings.TrimSpace(criterionID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Criterion{}, domainerrors.ErrCriterionNotFound
		}
		return entities.Criterion{}, r.logError("scoring_repo_get_criterion_failed", err, "criterion_id", criterionID)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpsertCriterion(ctx context.Context, criterion entities.Criterion) (entities.Criterion, error) {
	row := criterionModelFromEntity(criterion)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.Assignments(map[string]any{
			"description":   row.Description,
			"weight":        row.Weight,
			"max_score":     row.MaxScore,
			"display_order": row.DisplayOrder,
			"active":        row.Active,
			"updated_at":    row.UpdatedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		// Code conflicts resolve via the upsert; a remaining unique
		// violation is the display_order index.
		if isUniqueViolation(err) {
			return entities.Criterion{}, domainerrors.ErrDuplicateOrder
		}
		return entities.Criterion{}, r.logError("scoring_repo_upsert_criterion_failed", err, "code", criterion.Code)
	}

	// The conflict path keeps the stored row's criterion_id; read the row
	// back by code so the caller gets the persisted identity.
	var stored criterionModel
	err = r.db.WithContext(ctx).
		Where("code = ?", row.Code).
		First(&stored).
		Error
	if err != nil {
		return entities.Criterion{}, r.logError("scoring_repo_reload_criterion_failed", err, "code", criterion.Code)
	}
	return stored.toEntity(), nil
}

func (r *Repository) UpsertEvaluation(ctx context.Context, evaluation entities.Evaluation) error {
	row := evaluationModelFromEntity(evaluation)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "applicant_id"}, {Name: "criterion_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"evaluator_id": row.EvaluatorID,
			"score":        row.Score,
			"notes":        row.Notes,
			"evaluated_at": row.EvaluatedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return r.logError("scoring_repo_upsert_evaluation_failed", err,
			"applicant_id", evaluation.ApplicantID,
			"criterion_id", evaluation.CriterionID,
		)
	}
	return nil
}

func (r *Repository) DeleteEvaluation(ctx context.Context, applicantID string, criterionID string) error {
	result := r.db.WithContext(ctx).
		Where("applicant_id = ?", strings.TrimSpace(applicantID)).
		Where("criterion_id = ?", strings.TrimSpace(criterionID)).
		Delete(&evaluationModel{})
	if result.Error != nil {
		return r.logError("scoring_repo_delete_evaluation_failed", result.Error,
			"applicant_id", applicantID,
			"criterion_id", criterionID,
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEvaluationNotFound
	}
	return nil
}

func (r *Repository) ListEvaluationsByApplicant(ctx context.Context, applicantID string) ([]entities.Evaluation, error) {
	var rows []evaluationModel
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", strings.TrimSpace(applicantID)).
		Order("criterion_id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("scoring_repo_list_evaluations_failed", err, "applicant_id", applicantID)
	}
	items := make([]entities.Evaluation, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListApplicants(ctx context.Context, convocationID string) ([]ports.ApplicantSummary, error) {
	tx := r.db.WithContext(ctx).Model(&applicantRow{})
	if strings.TrimSpace(convocationID) != "" {
		tx = tx.Where("convocation_id = ?", strings.TrimSpace(convocationID))
	}
	var rows []applicantRow
	if err := tx.Order("registered_at ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("scoring_repo_list_applicants_failed", err, "convocation_id", convocationID)
	}
	items := make([]ports.ApplicantSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.ApplicantSummary{
			ApplicantID:   row.ApplicantID,
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			Email:         row.Email,
			Municipality:  row.Municipality,
			VentureName:   row.VentureName,
			ConvocationID: row.ConvocationID,
			RegisteredAt:  row.RegisteredAt,
		})
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "evaluation/scoring-service",
		"layer", "adapters/postgres",
		"error", err.Error(),
	}, args...)
	r.logger.Error("scoring repository operation failed", fields...)
	return err
}
