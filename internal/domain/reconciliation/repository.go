package reconciliation

import "context"

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status, comment *string, reviewedBy string) error
}
