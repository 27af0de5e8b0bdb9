package equipment

import "context"

type EquipmentRepository interface {
	// Create rejects a duplicate asset tag with ErrAssetTagExists.
	Create(ctx context.Context, equipment Equipment) (Equipment, error)
	GetByID(ctx context.Context, id string) (Equipment, error)

	// List returns assets in registration order.
	List(ctx context.Context, filter EquipmentFilter) ([]Equipment, error)
	Update(ctx context.Context, id string, fn func(e *Equipment) error) (Equipment, error)
}
