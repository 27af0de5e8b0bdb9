package incident

import "errors"

var (
	ErrIncidentNotFound  = errors.New("incident not found")
	ErrInvalidTransition = errors.New("incident status transition not allowed")
)
