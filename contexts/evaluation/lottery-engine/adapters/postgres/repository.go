package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"emprende/contexts/evaluation/lottery-engine/domain/entities"
	domainerrors "emprende/contexts/evaluation/lottery-engine/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
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

func (r *Repository) CreateRecord(ctx context.Context, record entities.LotteryRecord) error {
	row, err := recordModelFromEntity(record)
	if err != nil {
		return r.logError("lottery_repo_encode_record_failed", err, "record_id", record.RecordID)
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRecordImmutable
		}
		return r.logError("lottery_repo_create_record_failed", err, "record_id", record.RecordID)
	}
	return nil
}

func (r *Repository) GetRecord(ctx context.Context, recordID string) (entities.LotteryRecord, error) {
	var row lotteryRecordModel
	err := r.db.WithContext(ctx).
		Where("record_id = ?", strings.TrimSpace(recordID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.LotteryRecord{}, domainerrors.ErrRecordNotFound
		}
		return entities.LotteryRecord{}, r.logError("lottery_repo_get_record_failed", err, "record_id", recordID)
	}
	record, err := row.toEntity()
	if err != nil {
		return entities.LotteryRecord{}, r.logError("lottery_repo_decode_record_failed", err, "record_id", recordID)
	}
	return record, nil
}

func (r *Repository) ListRecords(ctx context.Context, limit int) ([]entities.LotteryRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []lotteryRecordModel
	err := r.db.WithContext(ctx).
		Order("executed_at DESC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("lottery_repo_list_records_failed", err)
	}
	records := make([]entities.LotteryRecord, 0, len(rows))
	for _, row := range rows {
		record, err := row.toEntity()
		if err != nil {
			return nil, r.logError("lottery_repo_decode_record_failed", err, "record_id", row.RecordID)
		}
		records = append(records, record)
	}
	return records, nil
}

// AmendNotes only ever touches the notes and amendments columns; the draw
// evidence columns have no update path.
func (r *Repository) AmendNotes(ctx context.Context, recordID string, amendment entities.Amendment) (entities.LotteryRecord, error) {
	recordID = strings.TrimSpace(recordID)
	var amended entities.LotteryRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row lotteryRecordModel
		if err := tx.Where("record_id = ?", recordID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrRecordNotFound
			}
			return err
		}
		record, err := row.toEntity()
		if err != nil {
			return err
		}
		record.Notes = amendment.Notes
		record.Amendments = append(record.Amendments, amendment)

		updated, err := recordModelFromEntity(record)
		if err != nil {
			return err
		}
		if err := tx.Model(&lotteryRecordModel{}).
			Where("record_id = ?", recordID).
			Updates(map[string]any{
				"notes":      updated.Notes,
				"amendments": updated.Amendments,
			}).Error; err != nil {
			return err
		}
		amended = record
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrRecordNotFound) {
			return entities.LotteryRecord{}, err
		}
		return entities.LotteryRecord{}, r.logError("lottery_repo_amend_notes_failed", err, "record_id", recordID)
	}
	return amended, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "evaluation/lottery-engine",
		"layer", "adapters/postgres",
		"error", err.Error(),
	}, args...)
	r.logger.Error("lottery repository operation failed", fields...)
	return err
}
