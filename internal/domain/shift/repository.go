package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, shift SupervisorShift) (SupervisorShift, error)
	GetByID(ctx context.Context, id string) (SupervisorShift, error)

	// List returns shifts newest first.
	List(ctx context.Context, filter ShiftFilter) ([]SupervisorShift, error)
	Update(ctx context.Context, id string, fn func(s *SupervisorShift) error) (SupervisorShift, error)
}
