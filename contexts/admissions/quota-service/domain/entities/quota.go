package entities

import "time"

const (
	QuotaModeOpen    = "open"
	QuotaModeBlocked = "blocked"
)

// Account statuses that count against municipal/global capacity.
// A freshly confirmed registration lands as "inactive" until the applicant
// activates the account; both states consume a slot.
const (
	AccountStatusActive     = "active"
	AccountStatusInactive   = "inactive"
	AccountStatusWaitlisted = "waitlisted"
	AccountStatusSuspended  = "suspended"
	AccountStatusRejected   = "rejected"
)

const (
	AdmissionConfirmed  = "confirmed"
	AdmissionWaitlisted = "waitlisted"
)

// QuotaConfig is an append-only capacity mode row; the most recently created
// row for a convocation is the active one.
type QuotaConfig struct {
	ConfigID      string
	ConvocationID string
	Mode          string
	GlobalMax     *int
	CreatedAt     time.Time
}

func DefaultQuotaConfig(convocationID string) QuotaConfig {
	return QuotaConfig{
		ConvocationID: convocationID,
		Mode:          QuotaModeOpen,
	}
}

type MunicipalityQuota struct {
	Slug        string
	Subregion   string
	MaxCapacity int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Applicant struct {
	ApplicantID   string
	FirstName     string
	LastName      string
	Email         string
	Municipality  string
	VentureName   string
	ConvocationID string
	AccountStatus string
	RegisteredAt  time.Time
}

// ConfirmedStatus reports whether an account status consumes quota capacity.
func ConfirmedStatus(status string) bool {
	return status == AccountStatusActive || status == AccountStatusInactive
}

// AdmissionSnapshot carries everything the admission rule needs, read under
// the caller's critical section.
type AdmissionSnapshot struct {
	Config                  QuotaConfig
	Capacity                MunicipalityQuota
	CapacityConfigured      bool
	ConfirmedInMunicipality int
	ConfirmedTotal          int
}

// AdmissionOutcome is the decision plus the inputs that produced it, kept for
// logging and for the registration response.
type AdmissionOutcome struct {
	Status                  string
	MunicipalityFull        bool
	GlobalFull              bool
	ConfirmedInMunicipality int
	ConfirmedTotal          int
}

// DecideAdmission applies the capacity rule to a consistent snapshot.
// Open mode confirms unconditionally. In blocked mode a municipality without
// a configured capacity row counts as capacity zero, so it always waitlists.
func DecideAdmission(snapshot AdmissionSnapshot) AdmissionOutcome {
	outcome := AdmissionOutcome{
		Status:                  AdmissionConfirmed,
		ConfirmedInMunicipality: snapshot.ConfirmedInMunicipality,
		ConfirmedTotal:          snapshot.ConfirmedTotal,
	}
	if snapshot.Config.Mode != QuotaModeBlocked {
		return outcome
	}

	maxCapacity := 0
	if snapshot.CapacityConfigured {
		maxCapacity = snapshot.Capacity.MaxCapacity
	}
	outcome.MunicipalityFull = snapshot.ConfirmedInMunicipality >= maxCapacity
	outcome.GlobalFull = snapshot.Config.GlobalMax != nil &&
		snapshot.ConfirmedTotal >= *snapshot.Config.GlobalMax

	if outcome.MunicipalityFull || outcome.GlobalFull {
		outcome.Status = AdmissionWaitlisted
	}
	return outcome
}

// AccountStatusForAdmission maps a decision to the status stored on the
// applicant row.
func AccountStatusForAdmission(status string) string {
	if status == AdmissionWaitlisted {
		return AccountStatusWaitlisted
	}
	return AccountStatusInactive
}
