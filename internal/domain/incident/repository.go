package incident

import "context"

type IncidentRepository interface {
	Create(ctx context.Context, incident Incident) (Incident, error)
	GetByID(ctx context.Context, id string) (Incident, error)

	// List returns incidents newest first.
	List(ctx context.Context, filter IncidentFilter) ([]Incident, error)
	Update(ctx context.Context, id string, fn func(i *Incident) error) (Incident, error)
}
