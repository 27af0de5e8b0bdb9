package dispatch

import "context"

type DispatchService interface {
	// ValidateDispatch resolves both ids and checks regional compliance.
	ValidateDispatch(ctx context.Context, guardID, postID string) (Validation, error)

	// RankForAbsence ranks substitutes for a pending absence. limit <= 0
	// returns the whole ranking.
	RankForAbsence(ctx context.Context, absenceID string, limit int) (RankingResponse, error)

	// CommitCoverage assigns a substitute and closes the absence as covered.
	CommitCoverage(ctx context.Context, req CoverRequest) (CoverageResponse, error)

	// Reassign moves a guard to another post outside the ranking flow.
	Reassign(ctx context.Context, req ReassignRequest) (ReassignResponse, error)
}
