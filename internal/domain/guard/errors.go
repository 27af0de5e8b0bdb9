package guard

import "errors"

var (
	ErrGuardNotFound          = errors.New("guard not found")
	ErrCPFExists              = errors.New("CPF already registered")
	ErrRegistrationExists     = errors.New("registration number already exists")
	ErrTravelLimitExceeded    = errors.New("authorized region exceeds the travel time limit")
	ErrStatusUnchanged        = errors.New("guard already has this status")
	ErrDocumentNotFound       = errors.New("guard has no document of this kind")
	ErrNotAssignedToPost      = errors.New("guard is not assigned to a post")
	ErrPrimaryRegionMandatory = errors.New("Plano Piloto must be an authorized region")
)
