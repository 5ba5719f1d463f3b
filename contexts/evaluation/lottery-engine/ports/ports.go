package ports

import (
	"context"
	"time"

	"emprende/contexts/evaluation/lottery-engine/domain/entities"
)

type ExecuteLotteryInput struct {
	AdministratorID string
	Description     string
	Notes           string
	Participants    []entities.Participant
}

type ActaInput struct {
	Description  string
	ExecutedAt   time.Time
	Participants []entities.Participant
	Winner       entities.Participant
	Result       entities.DrawResult
}

type RecordRepository interface {
	// CreateRecord persists a finished draw; it is never called twice for
	// the same record and no update path for Result/WinnerID/Participants
	// exists anywhere in the port.
	CreateRecord(ctx context.Context, record entities.LotteryRecord) error
	GetRecord(ctx context.Context, recordID string) (entities.LotteryRecord, error)
	ListRecords(ctx context.Context, limit int) ([]entities.LotteryRecord, error)
	// AmendNotes replaces Notes and appends the amendment to the log.
	AmendNotes(ctx context.Context, recordID string, amendment entities.Amendment) (entities.LotteryRecord, error)
}

// ActaRenderer produces the human-readable acta document for a draw.
// Rendering failure must not abort a lottery; callers fall back to a
// placeholder artifact.
type ActaRenderer interface {
	RenderActa(ctx context.Context, input ActaInput) ([]byte, string, error)
}

// SeedSource yields draw seeds from a non-deterministic secure entropy
// source; a predictable seed would make the outcome manipulable.
type SeedSource interface {
	NewSeed(ctx context.Context) (uint64, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
