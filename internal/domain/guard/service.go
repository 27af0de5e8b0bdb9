package guard

import "context"

// GuardService defines roster operations
type GuardService interface {
	// Admit registers a new guard after CPF, region-count and travel checks.
	Admit(ctx context.Context, req AdmitGuardRequest) (AdmissionResponse, error)

	Get(ctx context.Context, id string) (GuardResponse, error)
	List(ctx context.Context, filter GuardFilter) ([]GuardResponse, error)

	// CheckIn records a geolocated check-in against the guard's current post geofence.
	CheckIn(ctx context.Context, req CheckInRequest) (GuardResponse, error)

	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (GuardResponse, error)

	// UpdateDocument renews a document and lifts a compliance block.
	UpdateDocument(ctx context.Context, req UpdateDocumentRequest) (GuardResponse, error)

	// EnforceDocumentCompliance reclassifies documents by validity date and
	// blocks active guards holding an expired one.
	EnforceDocumentCompliance(ctx context.Context) (ComplianceSweepResult, error)
}
