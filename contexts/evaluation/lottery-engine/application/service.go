package application

import (
	"context"
	"log/slog"
	"strings"

	"emprende/contexts/evaluation/lottery-engine/domain/entities"
	domainerrors "emprende/contexts/evaluation/lottery-engine/domain/errors"
	"emprende/contexts/evaluation/lottery-engine/ports"
)

type Service struct {
	Records  ports.RecordRepository
	Renderer ports.ActaRenderer
	Seeds    ports.SeedSource
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// ExecuteLottery runs one draw end to end: secure seed, seeded shuffle,
// winner from position one, acta rendering, single persisted record. The
// draw outcome is decided before rendering is attempted, so a renderer
// failure degrades to a placeholder acta instead of aborting the lottery.
func (s Service) ExecuteLottery(ctx context.Context, input ports.ExecuteLotteryInput) (entities.LotteryRecord, error) {
	if err := validateInput(input); err != nil {
		return entities.LotteryRecord{}, err
	}

	seed, err := s.Seeds.NewSeed(ctx)
	if err != nil {
		return entities.LotteryRecord{}, err
	}
	recordID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.LotteryRecord{}, err
	}

	executedAt := s.Clock.Now().UTC()
	participants := append([]entities.Participant(nil), input.Participants...)
	order := entities.ShuffleWithSeed(participants, seed)

	record := entities.LotteryRecord{
		RecordID:        recordID,
		ExecutedAt:      executedAt,
		AdministratorID: strings.TrimSpace(input.AdministratorID),
		Description:     strings.TrimSpace(input.Description),
		Notes:           strings.TrimSpace(input.Notes),
		Participants:    participants,
		Result: entities.DrawResult{
			Seed:             seed,
			ExecutedAt:       executedAt,
			ParticipantCount: len(participants),
			Order:            order,
		},
		WinnerID: order[0].ApplicantID,
	}

	winner, _ := record.Winner()
	acta, actaName, err := s.Renderer.RenderActa(ctx, ports.ActaInput{
		Description:  record.Description,
		ExecutedAt:   executedAt,
		Participants: participants,
		Winner:       winner,
		Result:       record.Result,
	})
	if err != nil {
		resolveLogger(s.Logger).Warn("acta rendering failed, storing placeholder",
			"event", "lottery_acta_render_failed",
			"module", "evaluation/lottery-engine",
			"layer", "application",
			"record_id", record.RecordID,
			"error", err.Error(),
		)
		acta = []byte("acta not available")
		actaName = "acta_error.txt"
	}
	record.ActaName = actaName
	record.ActaContent = acta

	if err := s.Records.CreateRecord(ctx, record); err != nil {
		return entities.LotteryRecord{}, err
	}

	resolveLogger(s.Logger).Info("lottery executed",
		"event", "lottery_executed",
		"module", "evaluation/lottery-engine",
		"layer", "application",
		"record_id", record.RecordID,
		"participants", len(participants),
		"winner_id", record.WinnerID,
	)
	return record, nil
}

func (s Service) GetRecord(ctx context.Context, recordID string) (entities.LotteryRecord, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.LotteryRecord{}, domainerrors.ErrInvalidInput
	}
	return s.Records.GetRecord(ctx, recordID)
}

func (s Service) ListRecords(ctx context.Context, limit int) ([]entities.LotteryRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.Records.ListRecords(ctx, limit)
}

// AmendNotes updates the one mutable field of a record and logs who did it.
func (s Service) AmendNotes(ctx context.Context, recordID string, administratorID string, notes string) (entities.LotteryRecord, error) {
	recordID = strings.TrimSpace(recordID)
	administratorID = strings.TrimSpace(administratorID)
	if recordID == "" || administratorID == "" {
		return entities.LotteryRecord{}, domainerrors.ErrInvalidInput
	}

	record, err := s.Records.AmendNotes(ctx, recordID, entities.Amendment{
		AdministratorID: administratorID,
		Notes:           strings.TrimSpace(notes),
		AmendedAt:       s.Clock.Now().UTC(),
	})
	if err != nil {
		return entities.LotteryRecord{}, err
	}

	resolveLogger(s.Logger).Info("lottery notes amended",
		"event", "lottery_notes_amended",
		"module", "evaluation/lottery-engine",
		"layer", "application",
		"record_id", recordID,
		"administrator_id", administratorID,
	)
	return record, nil
}

// DownloadActa returns the stored acta bytes and filename.
func (s Service) DownloadActa(ctx context.Context, recordID string) ([]byte, string, error) {
	record, err := s.GetRecord(ctx, recordID)
	if err != nil {
		return nil, "", err
	}
	return record.ActaContent, record.ActaName, nil
}

func validateInput(input ports.ExecuteLotteryInput) error {
	if strings.TrimSpace(input.AdministratorID) == "" || strings.TrimSpace(input.Description) == "" {
		return domainerrors.ErrInvalidInput
	}
	if len(input.Participants) < 2 {
		return domainerrors.ErrNotEnoughParticipants
	}
	seen := make(map[string]bool, len(input.Participants))
	for _, participant := range input.Participants {
		id := strings.TrimSpace(participant.ApplicantID)
		if id == "" || seen[id] {
			return domainerrors.ErrInvalidInput
		}
		seen[id] = true
	}
	return nil
}
