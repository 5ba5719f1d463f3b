package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ParticipantDTO struct {
	ApplicantID  string `json:"applicant_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Municipality string `json:"municipality,omitempty"`
}

type ExecuteLotteryRequest struct {
	AdministratorID string           `json:"administrator_id"`
	Description     string           `json:"description"`
	Notes           string           `json:"notes,omitempty"`
	Participants    []ParticipantDTO `json:"participants"`
}

type DrawEntryDTO struct {
	Position    int    `json:"position"`
	ApplicantID string `json:"applicant_id"`
	FullName    string `json:"full_name"`
	AuxNumber   int    `json:"aux_number"`
}

type DrawResultDTO struct {
	Seed             uint64         `json:"seed"`
	ExecutedAt       string         `json:"executed_at"`
	ParticipantCount int            `json:"participant_count"`
	Order            []DrawEntryDTO `json:"order"`
}

type AmendmentDTO struct {
	AdministratorID string `json:"administrator_id"`
	Notes           string `json:"notes"`
	AmendedAt       string `json:"amended_at"`
}

type LotteryRecordDTO struct {
	RecordID        string           `json:"record_id"`
	ExecutedAt      string           `json:"executed_at"`
	AdministratorID string           `json:"administrator_id"`
	Description     string           `json:"description"`
	Notes           string           `json:"notes,omitempty"`
	Participants    []ParticipantDTO `json:"participants"`
	Result          DrawResultDTO    `json:"result"`
	WinnerID        string           `json:"winner_id"`
	Winner          ParticipantDTO   `json:"winner"`
	ActaName        string           `json:"acta_name"`
	Amendments      []AmendmentDTO   `json:"amendments,omitempty"`
}

type LotteryRecordResponse struct {
	Status string           `json:"status"`
	Data   LotteryRecordDTO `json:"data"`
}

type ListLotteryRecordsResponse struct {
	Status string             `json:"status"`
	Data   []LotteryRecordDTO `json:"data"`
}

type AmendNotesRequest struct {
	AdministratorID string `json:"administrator_id"`
	Notes           string `json:"notes"`
}
