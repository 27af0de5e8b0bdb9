package exception

import (
	"context"
	"time"
)

// MutateFunc edits an exception while the store holds its write lock.
type MutateFunc func(e *RegionalException) error

type ExceptionRepository interface {
	Create(ctx context.Context, e RegionalException) (RegionalException, error)
	GetByID(ctx context.Context, id string) (RegionalException, error)

	// List returns exceptions in request order.
	List(ctx context.Context, filter ExceptionFilter) ([]RegionalException, error)
	Update(ctx context.Context, id string, fn MutateFunc) (RegionalException, error)
}

// Consume marks a usable exception as spent. Used with Update it is a
// compare-and-set: a second consumer gets ErrNotUsable.
func Consume(at time.Time) MutateFunc {
	return func(e *RegionalException) error {
		if !e.Usable() {
			return ErrNotUsable
		}
		e.ConsumedAt = &at
		return nil
	}
}
