package inventory

import (
	"context"
	"time"
)

// InventoryService tracks demo machines, their source factories, and the
// challans that move them in and out of customer sites.
type InventoryService interface {
	CreateFactory(ctx context.Context, req CreateFactoryRequest) (Factory, error)
	ListFactories(ctx context.Context) ([]Factory, error)
	DeleteFactory(ctx context.Context, id string) error

	CreateMachine(ctx context.Context, req CreateMachineRequest) (Machine, error)
	GetMachine(ctx context.Context, id string) (Machine, error)
	ListMachines(ctx context.Context, filter MachineFilter) ([]Machine, int64, error)
	UpdateMachine(ctx context.Context, req UpdateMachineRequest) (Machine, error)

	IssueChallan(ctx context.Context, req CreateChallanRequest) (Challan, error)
	ReturnChallan(ctx context.Context, challanID string) (Challan, error)
	ListChallans(ctx context.Context, filter ChallanFilter) ([]Challan, int64, error)

	ExpiringWarranties(ctx context.Context, horizon time.Duration) ([]ExpiringWarranty, error)
}
