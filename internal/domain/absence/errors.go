package absence

import "errors"

var (
	ErrAbsenceNotFound   = errors.New("absence not found")
	ErrAbsenceNotPending = errors.New("absence is no longer pending")
)
