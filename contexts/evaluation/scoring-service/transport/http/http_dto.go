package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CriterionDTO struct {
	CriterionID string  `json:"criterion_id"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	MaxScore    int     `json:"max_score"`
	Order       int     `json:"order"`
	Active      bool    `json:"active"`
}

type ListCriteriaResponse struct {
	Status string         `json:"status"`
	Data   []CriterionDTO `json:"data"`
}

type UpsertCriterionRequest struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	MaxScore    int     `json:"max_score"`
	Order       int     `json:"order"`
	Active      bool    `json:"active"`
}

type UpsertCriterionResponse struct {
	Status string       `json:"status"`
	Data   CriterionDTO `json:"data"`
}

type WeightsReportResponse struct {
	Status string  `json:"status"`
	Total  float64 `json:"total_weight"`
	Valid  bool    `json:"valid"`
}

type RecordEvaluationRequest struct {
	EvaluatorID string `json:"evaluator_id"`
	ApplicantID string `json:"applicant_id"`
	CriterionID string `json:"criterion_id"`
	Score       int    `json:"score"`
	Notes       string `json:"notes,omitempty"`
}

type RecordEvaluationResponse struct {
	Status     string  `json:"status"`
	TotalScore float64 `json:"total_score"`
}

type RankedApplicantDTO struct {
	Position           int     `json:"position"`
	ApplicantID        string  `json:"applicant_id"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	Municipality       string  `json:"municipality"`
	VentureName        string  `json:"venture_name,omitempty"`
	TotalScore         float64 `json:"total_score"`
	EvaluationComplete bool    `json:"evaluation_complete"`
	RegisteredAt       string  `json:"registered_at"`
}

type RankingsResponse struct {
	Status string               `json:"status"`
	Data   []RankedApplicantDTO `json:"data"`
}

type TieGroupDTO struct {
	Score   float64              `json:"score"`
	Members []RankedApplicantDTO `json:"members"`
}

type TiesResponse struct {
	Status string        `json:"status"`
	Data   []TieGroupDTO `json:"data"`
	Count  int           `json:"count"`
}
