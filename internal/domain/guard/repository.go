package guard

import "context"

// MutateFunc edits a guard in place while the store holds its write lock.
// Returning an error leaves the stored record untouched.
type MutateFunc func(g *Guard) error

// GuardRepository is the roster store. List returns guards in admission order.
type GuardRepository interface {
	Create(ctx context.Context, guard Guard) (Guard, error)
	GetByID(ctx context.Context, id string) (Guard, error)
	List(ctx context.Context, filter GuardFilter) ([]Guard, error)

	// Update applies fn atomically and returns the stored result.
	Update(ctx context.Context, id string, fn MutateFunc) (Guard, error)

	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	ExistsByRegistration(ctx context.Context, registration string) (bool, error)
}
