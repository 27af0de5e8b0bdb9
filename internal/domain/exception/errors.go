package exception

import "errors"

var (
	ErrExceptionNotFound = errors.New("regional exception not found")
	ErrAlreadyDecided    = errors.New("regional exception already decided")
	ErrNotUsable         = errors.New("regional exception is not approved or already consumed")
	ErrAlreadyAuthorized = errors.New("guard is already authorized for the post region")
	ErrInvalidDecision   = errors.New("decision must be APPROVED or REJECTED")
)
