package inventory

import (
	"context"
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/inventory"
)

// WarrantyHorizon is how far ahead the daily sweep looks.
const WarrantyHorizon = 30 * 24 * time.Hour

type WarrantyNotifier interface {
	WarrantyExpiring(ctx context.Context, expiring []inventory.ExpiringWarranty)
}

// WarrantySweepJob returns the closure the cron scheduler runs daily: find
// machines whose warranty expires within the horizon and notify HR.
func WarrantySweepJob(svc *InventoryServiceImpl, notifier WarrantyNotifier) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		expiring, err := svc.ExpiringWarranties(ctx, WarrantyHorizon)
		if err != nil {
			return err
		}
		notifier.WarrantyExpiring(ctx, expiring)
		return nil
	}
}
