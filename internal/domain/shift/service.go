package shift

import "context"

type ShiftService interface {
	Start(ctx context.Context, req StartShiftRequest) (ShiftResponse, error)
	Current(ctx context.Context) (ShiftResponse, error)
	Handover(ctx context.Context, req HandoverRequest) (HandoverResponse, error)
	List(ctx context.Context, filter ShiftFilter) ([]ShiftResponse, error)
}
