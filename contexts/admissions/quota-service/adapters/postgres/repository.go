package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"emprende/contexts/admissions/quota-service/domain/entities"
	domainerrors "emprende/contexts/admissions/quota-service/domain/errors"
	"emprende/contexts/admissions/quota-service/ports"

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

func (r *Repository) GetActiveConfig(ctx context.Context, convocationID string) (entities.QuotaConfig, bool, error) {
	var row quotaConfigModel
	err := r.db.WithContext(ctx).
		Where("convocation_id = ?", strings.TrimSpace(convocationID)).
		Order("created_at DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.QuotaConfig{}, false, nil
		}
		return entities.QuotaConfig{}, false, r.logError("quota_repo_get_active_config_failed", err,
			"convocation_id", convocationID,
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) AppendConfig(ctx context.Context, config entities.QuotaConfig) error {
	row := quotaConfigModelFromEntity(config)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("quota_repo_append_config_failed", err,
			"convocation_id", config.ConvocationID,
		)
	}
	return nil
}

func (r *Repository) GetMunicipalityCapacity(ctx context.Context, slug string) (entities.MunicipalityQuota, error) {
	var row municipalityQuotaModel
	err := r.db.WithContext(ctx).
		Where("slug = ?", strings.TrimSpace(slug)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.MunicipalityQuota{}, domainerrors.ErrMunicipalityNotFound
		}
		return entities.MunicipalityQuota{}, r.logError("quota_repo_get_capacity_failed", err, "slug", slug)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListMunicipalityCapacities(ctx context.Context) ([]entities.MunicipalityQuota, error) {
	var rows []municipalityQuotaModel
	if err := r.db.WithContext(ctx).Order("slug ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("quota_repo_list_capacities_failed", err)
	}
	items := make([]entities.MunicipalityQuota, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpsertMunicipalityCapacities(ctx context.Context, items []entities.MunicipalityQuota) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if item.MaxCapacity < 0 || strings.TrimSpace(item.Slug) == "" {
				return domainerrors.ErrInvalidInput
			}
			row := municipalityQuotaModelFromEntity(item)
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "slug"}},
				DoUpdates: clause.Assignments(map[string]any{
					"subregion":    row.Subregion,
					"max_capacity": row.MaxCapacity,
					"updated_at":   row.UpdatedAt,
				}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) {
			return err
		}
		return r.logError("quota_repo_upsert_capacities_failed", err, "count", len(items))
	}
	return nil
}

// DecideAndRegister holds the municipality capacity row under FOR UPDATE for
// the whole count-then-decide-then-insert sequence. When a global ceiling is
// active the count spans all municipalities, so a convocation-wide advisory
// lock serializes those registrations as well. Everything commits or rolls
// back as one unit.
func (r *Repository) DecideAndRegister(ctx context.Context, applicant entities.Applicant, config entities.QuotaConfig) (entities.AdmissionOutcome, error) {
	var outcome entities.AdmissionOutcome
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if config.Mode == entities.QuotaModeBlocked {
			snapshot, err := r.lockAndSnapshot(tx, applicant.Municipality, config)
			if err != nil {
				return err
			}
			outcome = entities.DecideAdmission(snapshot)
		} else {
			outcome = entities.DecideAdmission(entities.AdmissionSnapshot{Config: config})
		}

		applicant.AccountStatus = entities.AccountStatusForAdmission(outcome.Status)
		row := applicantModelFromEntity(applicant)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrDuplicateApplicant
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateApplicant) {
			return entities.AdmissionOutcome{}, err
		}
		if isSerializationFailure(err) {
			return entities.AdmissionOutcome{}, domainerrors.ErrAdmissionConflict
		}
		return entities.AdmissionOutcome{}, r.logError("quota_repo_decide_and_register_failed", err,
			"municipality", applicant.Municipality,
			"convocation_id", applicant.ConvocationID,
		)
	}
	return outcome, nil
}

func (r *Repository) PreviewAdmission(ctx context.Context, municipality string, config entities.QuotaConfig) (entities.AdmissionOutcome, error) {
	if config.Mode != entities.QuotaModeBlocked {
		return entities.DecideAdmission(entities.AdmissionSnapshot{Config: config}), nil
	}

	snapshot := entities.AdmissionSnapshot{Config: config}
	var capacity municipalityQuotaModel
	err := r.db.WithContext(ctx).
		Where("slug = ?", strings.TrimSpace(municipality)).
		First(&capacity).
		Error
	if err == nil {
		snapshot.Capacity = capacity.toEntity()
		snapshot.CapacityConfigured = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.AdmissionOutcome{}, r.logError("quota_repo_preview_failed", err, "municipality", municipality)
	}

	total, inMunicipality, err := r.countConfirmed(r.db.WithContext(ctx), config.ConvocationID, municipality)
	if err != nil {
		return entities.AdmissionOutcome{}, r.logError("quota_repo_preview_count_failed", err, "municipality", municipality)
	}
	snapshot.ConfirmedTotal = total
	snapshot.ConfirmedInMunicipality = inMunicipality
	return entities.DecideAdmission(snapshot), nil
}

func (r *Repository) GetApplicant(ctx context.Context, applicantID string) (entities.Applicant, error) {
	var row applicantModel
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", strings.TrimSpace(applicantID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Applicant{}, domainerrors.ErrApplicantNotFound
		}
		return entities.Applicant{}, r.logError("quota_repo_get_applicant_failed", err, "applicant_id", applicantID)
	}
	return row.toEntity(), nil
}

func (r *Repository) CountConfirmed(ctx context.Context, convocationID string) (ports.ConfirmedCounts, error) {
	type bucket struct {
		Municipality string
		N            int
	}
	var buckets []bucket
	err := r.db.WithContext(ctx).
		Model(&applicantModel{}).
		Select("municipality, COUNT(*) AS n").
		Where("convocation_id = ?", strings.TrimSpace(convocationID)).
		Where("account_status IN ?", confirmedStatuses()).
		Group("municipality").
		Scan(&buckets).
		Error
	if err != nil {
		return ports.ConfirmedCounts{}, r.logError("quota_repo_count_confirmed_failed", err,
			"convocation_id", convocationID,
		)
	}
	counts := ports.ConfirmedCounts{ByMunicipality: make(map[string]int, len(buckets))}
	for _, b := range buckets {
		counts.ByMunicipality[b.Municipality] = b.N
		counts.Total += b.N
	}
	return counts, nil
}

// lockAndSnapshot acquires the locks and reads the counts inside tx.
func (r *Repository) lockAndSnapshot(tx *gorm.DB, municipality string, config entities.QuotaConfig) (entities.AdmissionSnapshot, error) {
	snapshot := entities.AdmissionSnapshot{Config: config}

	// Global ceiling counts across all municipalities, so the advisory lock
	// comes first to keep lock ordering identical on every code path.
	if config.GlobalMax != nil {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", config.ConvocationID).Error; err != nil {
			return snapshot, err
		}
	}

	var capacity municipalityQuotaModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("slug = ?", strings.TrimSpace(municipality)).
		First(&capacity).
		Error
	if err == nil {
		snapshot.Capacity = capacity.toEntity()
		snapshot.CapacityConfigured = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return snapshot, err
	}

	total, inMunicipality, err := r.countConfirmed(tx, config.ConvocationID, municipality)
	if err != nil {
		return snapshot, err
	}
	snapshot.ConfirmedTotal = total
	snapshot.ConfirmedInMunicipality = inMunicipality
	return snapshot, nil
}

func (r *Repository) countConfirmed(tx *gorm.DB, convocationID string, municipality string) (int, int, error) {
	var total int64
	if err := tx.Model(&applicantModel{}).
		Where("convocation_id = ?", convocationID).
		Where("account_status IN ?", confirmedStatuses()).
		Count(&total).
		Error; err != nil {
		return 0, 0, err
	}

	var inMunicipality int64
	if err := tx.Model(&applicantModel{}).
		Where("convocation_id = ?", convocationID).
		Where("municipality = ?", strings.TrimSpace(municipality)).
		Where("account_status IN ?", confirmedStatuses()).
		Count(&inMunicipality).
		Error; err != nil {
		return 0, 0, err
	}
	return int(total), int(inMunicipality), nil
}

func confirmedStatuses() []string {
	return []string{entities.AccountStatusActive, entities.AccountStatusInactive}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "admissions/quota-service",
		"layer", "adapters/postgres",
		"error", err.Error(),
	}, args...)
	r.logger.Error("quota repository operation failed", fields...)
	return err
}
