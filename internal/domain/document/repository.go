package document

import "context"

type InvoiceRepository interface {
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	GetByNumber(ctx context.Context, number string) (Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]Invoice, int64, error)
	UpdateStatus(ctx context.Context, id string, status InvoiceStatus) error
	// NextSequence returns the next per-year invoice counter. Callers that
	// need a gap-free number run it inside a transaction.
	NextSequence(ctx context.Context, year int) (int, error)
}

type OrderRepository interface {
	Create(ctx context.Context, ord Order) (Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	List(ctx context.Context, filter OrderFilter) ([]Order, int64, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
	NextSequence(ctx context.Context, year int) (int, error)
}

type DeliveryChallanRepository interface {
	Create(ctx context.Context, ch DeliveryChallan) (DeliveryChallan, error)
	GetByID(ctx context.Context, id string) (DeliveryChallan, error)
	List(ctx context.Context, filter ChallanFilter) ([]DeliveryChallan, int64, error)
	UpdateStatus(ctx context.Context, id string, status ChallanStatus) error
	NextSequence(ctx context.Context, year int) (int, error)
}
