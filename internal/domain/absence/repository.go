package absence

import "context"

// MutateFunc edits an absence in place while the store holds its write lock.
// Returning an error leaves the stored record untouched.
type MutateFunc func(a *Absence) error

type AbsenceRepository interface {
	Create(ctx context.Context, absence Absence) (Absence, error)
	GetByID(ctx context.Context, id string) (Absence, error)

	// List returns absences in report order.
	List(ctx context.Context, filter AbsenceFilter) ([]Absence, error)

	// Update applies fn atomically and returns the stored result.
	Update(ctx context.Context, id string, fn MutateFunc) (Absence, error)
}

// RequirePending wraps fn so it only runs while the absence is still pending.
func RequirePending(fn MutateFunc) MutateFunc {
	return func(a *Absence) error {
		if a.Status != StatusPending {
			return ErrAbsenceNotPending
		}
		return fn(a)
	}
}
