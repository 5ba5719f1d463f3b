package postgresadapter

import (
	"encoding/json"
	"time"

	"emprende/contexts/evaluation/lottery-engine/domain/entities"
)

// Participants, Result, and Amendments persist as JSON blobs: their shape
// carries draw trivia (auxiliary numbers, snapshots) that never needs to be
// queried relationally.
type lotteryRecordModel struct {
	RecordID        string    `gorm:"column:record_id;primaryKey"`
	ExecutedAt      time.Time `gorm:"column:executed_at;index:idx_lottery_records_executed_at"`
	AdministratorID string    `gorm:"column:administrator_id"`
	Description     string    `gorm:"column:description"`
	Notes           string    `gorm:"column:notes"`
	Participants    []byte    `gorm:"column:participants;type:jsonb"`
	Result          []byte    `gorm:"column:result;type:jsonb"`
	WinnerID        string    `gorm:"column:winner_id"`
	ActaName        string    `gorm:"column:acta_name"`
	ActaContent     []byte    `gorm:"column:acta_content"`
	Amendments      []byte    `gorm:"column:amendments;type:jsonb"`
}

func (lotteryRecordModel) TableName() string { return "lottery_records" }

type participantBlob struct {
	ApplicantID  string `json:"applicant_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Municipality string `json:"municipality"`
}

type drawEntryBlob struct {
	Position    int    `json:"position"`
	ApplicantID string `json:"applicant_id"`
	FullName    string `json:"full_name"`
	AuxNumber   int    `json:"aux_number"`
}

type drawResultBlob struct {
	Seed             uint64          `json:"seed"`
	ExecutedAt       time.Time       `json:"executed_at"`
	ParticipantCount int             `json:"participant_count"`
	Order            []drawEntryBlob `json:"order"`
}

type amendmentBlob struct {
	AdministratorID string    `json:"administrator_id"`
	Notes           string    `json:"notes"`
	AmendedAt       time.Time `json:"amended_at"`
}

func recordModelFromEntity(record entities.LotteryRecord) (lotteryRecordModel, error) {
	participants := make([]participantBlob, 0, len(record.Participants))
	for _, p := range record.Participants {
		participants = append(participants, participantBlob(p))
	}
	participantsJSON, err := json.Marshal(participants)
	if err != nil {
		return lotteryRecordModel{}, err
	}

	order := make([]drawEntryBlob, 0, len(record.Result.Order))
	for _, entry := range record.Result.Order {
		order = append(order, drawEntryBlob(entry))
	}
	resultJSON, err := json.Marshal(drawResultBlob{
		Seed:             record.Result.Seed,
		ExecutedAt:       record.Result.ExecutedAt,
		ParticipantCount: record.Result.ParticipantCount,
		Order:            order,
	})
	if err != nil {
		return lotteryRecordModel{}, err
	}

	amendments := make([]amendmentBlob, 0, len(record.Amendments))
	for _, a := range record.Amendments {
		amendments = append(amendments, amendmentBlob(a))
	}
	amendmentsJSON, err := json.Marshal(amendments)
	if err != nil {
		return lotteryRecordModel{}, err
	}

	return lotteryRecordModel{
		RecordID:        record.RecordID,
		ExecutedAt:      record.ExecutedAt,
		AdministratorID: record.AdministratorID,
		Description:     record.Description,
		Notes:           record.Notes,
		Participants:    participantsJSON,
		Result:          resultJSON,
		WinnerID:        record.WinnerID,
		ActaName:        record.ActaName,
		ActaContent:     record.ActaContent,
		Amendments:      amendmentsJSON,
	}, nil
}

// toEntity validates the blobs at the boundary when reading back.
func (m lotteryRecordModel) toEntity() (entities.LotteryRecord, error) {
	var participants []participantBlob
	if err := json.Unmarshal(m.Participants, &participants); err != nil {
		return entities.LotteryRecord{}, err
	}
	var result drawResultBlob
	if err := json.Unmarshal(m.Result, &result); err != nil {
		return entities.LotteryRecord{}, err
	}
	var amendments []amendmentBlob
	if len(m.Amendments) > 0 {
		if err := json.Unmarshal(m.Amendments, &amendments); err != nil {
			return entities.LotteryRecord{}, err
		}
	}

	record := entities.LotteryRecord{
		RecordID:        m.RecordID,
		ExecutedAt:      m.ExecutedAt,
		AdministratorID: m.AdministratorID,
		Description:     m.Description,
		Notes:           m.Notes,
		WinnerID:        m.WinnerID,
		ActaName:        m.ActaName,
		ActaContent:     m.ActaContent,
		Result: entities.DrawResult{
			Seed:             result.Seed,
			ExecutedAt:       result.ExecutedAt,
			ParticipantCount: result.ParticipantCount,
		},
	}
	for _, p := range participants {
		record.Participants = append(record.Participants, entities.Participant(p))
	}
	for _, entry := range result.Order {
		record.Result.Order = append(record.Result.Order, entities.DrawEntry(entry))
	}
	for _, a := range amendments {
		record.Amendments = append(record.Amendments, entities.Amendment(a))
	}
	return record, nil
}
