package inventory

import (
	"context"
	"time"
)

type FactoryRepository interface {
	Create(ctx context.Context, factory Factory) (Factory, error)
	GetByID(ctx context.Context, id string) (Factory, error)
	List(ctx context.Context) ([]Factory, error)
	Delete(ctx context.Context, id string) error
}

type MachineRepository interface {
	Create(ctx context.Context, machine Machine) (Machine, error)
	GetByID(ctx context.Context, id string) (Machine, error)
	List(ctx context.Context, filter MachineFilter) ([]Machine, int64, error)
	Update(ctx context.Context, req UpdateMachineRequest) error
	SetStatus(ctx context.Context, id string, status MachineStatus) error
	// ListWithWarrantyExpiringBefore returns delivered machines whose derived
	// warranty expiry falls before the cutoff but has not yet passed asOf.
	ListWithWarrantyExpiringBefore(ctx context.Context, asOf, cutoff time.Time) ([]Machine, error)
}

type ChallanRepository interface {
	Create(ctx context.Context, challan Challan) (Challan, error)
	GetByID(ctx context.Context, id string) (Challan, error)
	List(ctx context.Context, filter ChallanFilter) ([]Challan, int64, error)
	Close(ctx context.Context, id string) error
}
