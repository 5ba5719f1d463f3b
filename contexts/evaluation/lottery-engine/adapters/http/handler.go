package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"emprende/contexts/evaluation/lottery-engine/application"
	"emprende/contexts/evaluation/lottery-engine/domain/entities"
	"emprende/contexts/evaluation/lottery-engine/ports"
	httptransport "emprende/contexts/evaluation/lottery-engine/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ExecuteLotteryHandler(
	ctx context.Context,
	req httptransport.ExecuteLotteryRequest,
) (httptransport.LotteryRecordResponse, error) {
	participants := make([]entities.Participant, 0, len(req.Participants))
	for _, p := range req.Participants {
		participants = append(participants, entities.Participant{
			ApplicantID:  p.ApplicantID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Email:        p.Email,
			Municipality: p.Municipality,
		})
	}
	record, err := h.Service.ExecuteLottery(ctx, ports.ExecuteLotteryInput{
		AdministratorID: req.AdministratorID,
		Description:     req.Description,
		Notes:           req.Notes,
		Participants:    participants,
	})
	if err != nil {
		return httptransport.LotteryRecordResponse{}, err
	}
	return httptransport.LotteryRecordResponse{
		Status: "success",
		Data:   recordToDTO(record),
	}, nil
}

func (h Handler) GetRecordHandler(
	ctx context.Context,
	recordID string,
) (httptransport.LotteryRecordResponse, error) {
	record, err := h.Service.GetRecord(ctx, recordID)
	if err != nil {
		return httptransport.LotteryRecordResponse{}, err
	}
	return httptransport.LotteryRecordResponse{
		Status: "success",
		Data:   recordToDTO(record),
	}, nil
}

func (h Handler) ListRecordsHandler(
	ctx context.Context,
	limit int,
) (httptransport.ListLotteryRecordsResponse, error) {
	records, err := h.Service.ListRecords(ctx, limit)
	if err != nil {
		return httptransport.ListLotteryRecordsResponse{}, err
	}
	resp := httptransport.ListLotteryRecordsResponse{
		Status: "success",
		Data:   make([]httptransport.LotteryRecordDTO, 0, len(records)),
	}
	for _, record := range records {
		resp.Data = append(resp.Data, recordToDTO(record))
	}
	return resp, nil
}

func (h Handler) AmendNotesHandler(
	ctx context.Context,
	recordID string,
	req httptransport.AmendNotesRequest,
) (httptransport.LotteryRecordResponse, error) {
	record, err := h.Service.AmendNotes(ctx, recordID, req.AdministratorID, req.Notes)
	if err != nil {
		return httptransport.LotteryRecordResponse{}, err
	}
	return httptransport.LotteryRecordResponse{
		Status: "success",
		Data:   recordToDTO(record),
	}, nil
}

// DownloadActaHandler returns the raw acta bytes and the stored filename;
// the route layer sets the content disposition.
func (h Handler) DownloadActaHandler(
	ctx context.Context,
	recordID string,
) ([]byte, string, error) {
	return h.Service.DownloadActa(ctx, recordID)
}

func recordToDTO(record entities.LotteryRecord) httptransport.LotteryRecordDTO {
	dto := httptransport.LotteryRecordDTO{
		RecordID:        record.RecordID,
		ExecutedAt:      record.ExecutedAt.UTC().Format(time.RFC3339),
		AdministratorID: record.AdministratorID,
		Description:     record.Description,
		Notes:           record.Notes,
		WinnerID:        record.WinnerID,
		ActaName:        record.ActaName,
		Participants:    make([]httptransport.ParticipantDTO, 0, len(record.Participants)),
		Result: httptransport.DrawResultDTO{
			Seed:             record.Result.Seed,
			ExecutedAt:       record.Result.ExecutedAt.UTC().Format(time.RFC3339),
			ParticipantCount: record.Result.ParticipantCount,
			Order:            make([]httptransport.DrawEntryDTO, 0, len(record.Result.Order)),
		},
	}
	for _, p := range record.Participants {
		dto.Participants = append(dto.Participants, participantToDTO(p))
	}
	for _, entry := range record.Result.Order {
		dto.Result.Order = append(dto.Result.Order, httptransport.DrawEntryDTO{
			Position:    entry.Position,
			ApplicantID: entry.ApplicantID,
			FullName:    entry.FullName,
			AuxNumber:   entry.AuxNumber,
		})
	}
	if winner, ok := record.Winner(); ok {
		dto.Winner = participantToDTO(winner)
	}
	for _, a := range record.Amendments {
		dto.Amendments = append(dto.Amendments, httptransport.AmendmentDTO{
			AdministratorID: a.AdministratorID,
			Notes:           a.Notes,
			AmendedAt:       a.AmendedAt.UTC().Format(time.RFC3339),
		})
	}
	return dto
}

func participantToDTO(p entities.Participant) httptransport.ParticipantDTO {
	return httptransport.ParticipantDTO{
		ApplicantID:  p.ApplicantID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Municipality: p.Municipality,
	}
}
