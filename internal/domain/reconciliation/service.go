package reconciliation

import (
	"context"
)

// ReconciliationService handles attendance correction requests.
type ReconciliationService interface {
	CreateRequest(ctx context.Context, req CreateRequestRequest) (Request, error)
	GetRequest(ctx context.Context, id string) (Request, error)
	ListRequests(ctx context.Context, filter RequestFilter) ([]Request, int64, error)
	DecideRequest(ctx context.Context, req DecideRequestRequest, approve bool, reviewedBy string) (Request, error)
}
