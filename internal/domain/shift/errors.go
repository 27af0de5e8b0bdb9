package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("supervisor shift not found")
	ErrNoActiveShift      = errors.New("no supervisor shift is active")
	ErrShiftAlreadyActive = errors.New("a supervisor shift is already active")
	ErrSameSupervisor     = errors.New("incoming supervisor must differ from the outgoing one")
)
