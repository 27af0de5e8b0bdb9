package absence

import "context"

type AbsenceService interface {
	// Report opens a pending absence for a guard at a post.
	Report(ctx context.Context, req ReportAbsenceRequest) (AbsenceResponse, error)
	Get(ctx context.Context, id string) (AbsenceResponse, error)
	List(ctx context.Context, filter AbsenceFilter) ([]AbsenceResponse, error)

	// MarkUncovered closes a pending absence without a substitute.
	MarkUncovered(ctx context.Context, id string) (AbsenceResponse, error)

	// FlagSLABreaches records one breach per pending absence left open past the
	// response SLA.
	FlagSLABreaches(ctx context.Context) (SLASweepResult, error)
}
