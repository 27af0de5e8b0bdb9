package dispatch

import "errors"

var (
	ErrInvalidDispatchInput = errors.New("guard or post could not be resolved")
	ErrRegionNotAuthorized  = errors.New("post region is not authorized for this guard")
	ErrSameCrew             = errors.New("substitute must belong to the opposite crew")
	ErrGuardNotActive       = errors.New("substitute is not active")
	ErrAbsentGuard          = errors.New("absent guard cannot cover their own absence")
	ErrAlreadyAssigned      = errors.New("guard is already assigned to this post")
)
