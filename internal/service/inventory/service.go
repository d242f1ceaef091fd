package inventory

import (
	"context"
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/inventory"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

type InventoryServiceImpl struct {
	inventory.FactoryRepository
	inventory.MachineRepository
	inventory.ChallanRepository
	tm database.TxManager
}

func NewInventoryService(
	factoryRepo inventory.FactoryRepository,
	machineRepo inventory.MachineRepository,
	challanRepo inventory.ChallanRepository,
	tm database.TxManager,
) *InventoryServiceImpl {
	return &InventoryServiceImpl{
		FactoryRepository: factoryRepo,
		MachineRepository: machineRepo,
		ChallanRepository: challanRepo,
		tm:                tm,
	}
}

func (s *InventoryServiceImpl) CreateFactory(ctx context.Context, req inventory.CreateFactoryRequest) (inventory.Factory, error) {
	if err := req.Validate(); err != nil {
		return inventory.Factory{}, err
	}
	return s.FactoryRepository.Create(ctx, inventory.Factory{
		Name:    req.Name,
		Contact: req.Contact,
	})
}

func (s *InventoryServiceImpl) ListFactories(ctx context.Context) ([]inventory.Factory, error) {
	return s.FactoryRepository.List(ctx)
}

func (s *InventoryServiceImpl) DeleteFactory(ctx context.Context, id string) error {
	return s.FactoryRepository.Delete(ctx, id)
}

func (s *InventoryServiceImpl) CreateMachine(ctx context.Context, req inventory.CreateMachineRequest) (inventory.Machine, error) {
	if err := req.Validate(); err != nil {
		return inventory.Machine{}, err
	}

	if req.FactoryID != nil && *req.FactoryID != "" {
		if _, err := s.FactoryRepository.GetByID(ctx, *req.FactoryID); err != nil {
			return inventory.Machine{}, err
		}
	}

	return s.MachineRepository.Create(ctx, inventory.Machine{
		Model:          req.Model,
		Serial:         req.Serial,
		FactoryID:      req.FactoryID,
		WarrantyMonths: req.WarrantyMonths,
		DeliveryDate:   req.DeliveryDateTime(),
		Status:         inventory.MachineStatusInStock,
	})
}

func (s *InventoryServiceImpl) GetMachine(ctx context.Context, id string) (inventory.Machine, error) {
	return s.MachineRepository.GetByID(ctx, id)
}

func (s *InventoryServiceImpl) ListMachines(ctx context.Context, filter inventory.MachineFilter) ([]inventory.Machine, int64, error) {
	return s.MachineRepository.List(ctx, filter)
}

func (s *InventoryServiceImpl) UpdateMachine(ctx context.Context, req inventory.UpdateMachineRequest) (inventory.Machine, error) {
	if err := req.Validate(); err != nil {
		return inventory.Machine{}, err
	}
	if err := s.MachineRepository.Update(ctx, req); err != nil {
		return inventory.Machine{}, err
	}
	return s.MachineRepository.GetByID(ctx, req.ID)
}

// IssueChallan sends an in-stock demo machine out to a customer. The challan
// insert and the machine status flip commit together.
func (s *InventoryServiceImpl) IssueChallan(ctx context.Context, req inventory.CreateChallanRequest) (inventory.Challan, error) {
	if err := req.Validate(); err != nil {
		return inventory.Challan{}, err
	}

	machine, err := s.MachineRepository.GetByID(ctx, req.MachineID)
	if err != nil {
		return inventory.Challan{}, err
	}
	if machine.Status != inventory.MachineStatusInStock {
		return inventory.Challan{}, inventory.ErrMachineNotInStock
	}

	var dueBack *time.Time
	if req.DueBack != nil {
		t, _ := validator.IsValidDate(*req.DueBack)
		dueBack = &t
	}

	var created inventory.Challan
	err = s.tm.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.ChallanRepository.Create(txCtx, inventory.Challan{
			MachineID:    req.MachineID,
			CustomerName: req.CustomerName,
			IssuedAt:     time.Now(),
			DueBack:      dueBack,
			Status:       inventory.ChallanStatusOpen,
		})
		if err != nil {
			return err
		}
		return s.MachineRepository.SetStatus(txCtx, machine.ID, inventory.MachineStatusAtCustomer)
	})
	if err != nil {
		return inventory.Challan{}, err
	}

	return created, nil
}

// ReturnChallan closes an open challan and marks the machine returned.
func (s *InventoryServiceImpl) ReturnChallan(ctx context.Context, challanID string) (inventory.Challan, error) {
	challan, err := s.ChallanRepository.GetByID(ctx, challanID)
	if err != nil {
		return inventory.Challan{}, err
	}

	err = s.tm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ChallanRepository.Close(txCtx, challan.ID); err != nil {
			return err
		}
		return s.MachineRepository.SetStatus(txCtx, challan.MachineID, inventory.MachineStatusReturned)
	})
	if err != nil {
		return inventory.Challan{}, err
	}

	return s.ChallanRepository.GetByID(ctx, challan.ID)
}

func (s *InventoryServiceImpl) ListChallans(ctx context.Context, filter inventory.ChallanFilter) ([]inventory.Challan, int64, error) {
	return s.ChallanRepository.List(ctx, filter)
}

// ExpiringWarranties lists machines whose warranty runs out within the
// horizon, for the daily sweep and for the dashboard readout.
func (s *InventoryServiceImpl) ExpiringWarranties(ctx context.Context, horizon time.Duration) ([]inventory.ExpiringWarranty, error) {
	now := time.Now()
	machines, err := s.MachineRepository.ListWithWarrantyExpiringBefore(ctx, now, now.Add(horizon))
	if err != nil {
		return nil, err
	}

	var out []inventory.ExpiringWarranty
	for _, m := range machines {
		expiry, ok := m.WarrantyExpiry()
		if !ok {
			continue
		}
		out = append(out, inventory.ExpiringWarranty{Machine: m, ExpiresAt: expiry})
	}
	return out, nil
}
