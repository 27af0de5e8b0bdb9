package incident

import "context"

type IncidentService interface {
	Register(ctx context.Context, req RegisterIncidentRequest) (IncidentResponse, error)
	List(ctx context.Context, filter IncidentFilter) ([]IncidentResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (IncidentResponse, error)
}
