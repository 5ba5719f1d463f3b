package errors

import "errors"

var (
	ErrInvalidInput         = errors.New("admission input is invalid")
	ErrMunicipalityNotFound = errors.New("municipality capacity not found")
	ErrApplicantNotFound    = errors.New("applicant not found")
	ErrDuplicateApplicant   = errors.New("applicant already registered for this convocation")
	ErrAdmissionConflict    = errors.New("concurrent admission decisions collided, retry the registration")
)
