package equipment

import "context"

type EquipmentService interface {
	Register(ctx context.Context, req RegisterEquipmentRequest) (EquipmentResponse, error)
	List(ctx context.Context, filter EquipmentFilter) ([]EquipmentResponse, error)
	Summary(ctx context.Context) (SummaryResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (EquipmentResponse, error)
	Return(ctx context.Context, req ReturnRequest) (EquipmentResponse, error)
	Restore(ctx context.Context, id string) (EquipmentResponse, error)
}
