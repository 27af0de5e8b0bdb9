package dashboard

import "context"

// DashboardService defines the interface for operations dashboard reads
type DashboardService interface {
	// Readiness combines absences, incidents and roster state into one score
	Readiness(ctx context.Context) (*ReadinessResponse, error)

	// OperationalMap flags abandonment and regional compliance per post
	OperationalMap(ctx context.Context) ([]PostStatusResponse, error)

	// Simulate estimates whether a region can absorb new posts
	Simulate(ctx context.Context, req SimulationRequest) (*SimulationResponse, error)
}
