package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterApplicantRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Municipality  string `json:"municipality"`
	VentureName   string `json:"venture_name,omitempty"`
	ConvocationID string `json:"convocation_id,omitempty"`
}

type ApplicantDTO struct {
	ApplicantID   string `json:"applicant_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Municipality  string `json:"municipality"`
	VentureName   string `json:"venture_name,omitempty"`
	ConvocationID string `json:"convocation_id"`
	AccountStatus string `json:"account_status"`
	RegisteredAt  string `json:"registered_at"`
}

type AdmissionDTO struct {
	Status                  string `json:"status"`
	MunicipalityFull        bool   `json:"municipality_full"`
	GlobalFull              bool   `json:"global_full"`
	ConfirmedInMunicipality int    `json:"confirmed_in_municipality"`
	ConfirmedTotal          int    `json:"confirmed_total"`
}

type RegisterApplicantResponse struct {
	Status    string       `json:"status"`
	Applicant ApplicantDTO `json:"applicant"`
	Admission AdmissionDTO `json:"admission"`
}

type QuotaConfigDTO struct {
	ConfigID      string `json:"config_id,omitempty"`
	ConvocationID string `json:"convocation_id"`
	Mode          string `json:"mode"`
	GlobalMax     *int   `json:"global_max"`
	CreatedAt     string `json:"created_at,omitempty"`
}

type QuotaConfigResponse struct {
	Status string         `json:"status"`
	Data   QuotaConfigDTO `json:"data"`
}

type SetQuotaConfigRequest struct {
	ConvocationID string `json:"convocation_id,omitempty"`
	Mode          string `json:"mode"`
	GlobalMax     *int   `json:"global_max"`
}

type MunicipalityQuotaDTO struct {
	Slug        string `json:"slug"`
	Subregion   string `json:"subregion"`
	MaxCapacity int    `json:"max_capacity"`
}

type ListCapacitiesResponse struct {
	Status string                 `json:"status"`
	Data   []MunicipalityQuotaDTO `json:"data"`
}

type SetCapacitiesRequest struct {
	Items []MunicipalityQuotaDTO `json:"items"`
}

type SetCapacitiesResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type OccupancyResponse struct {
	Status string         `json:"status"`
	Total  int            `json:"total"`
	Data   map[string]int `json:"by_municipality"`
}

type AdmissionPreviewResponse struct {
	Status    string       `json:"status"`
	Admission AdmissionDTO `json:"admission"`
}
