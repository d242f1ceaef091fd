package document

import (
	"context"
)

// DocumentService issues invoices, orders, and delivery challans with
// sequential numbering per financial year.
type DocumentService interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (Invoice, error)
	GetInvoice(ctx context.Context, id string) (Invoice, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]Invoice, int64, error)
	SetInvoiceStatus(ctx context.Context, id string, status InvoiceStatus) (Invoice, error)

	CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error)
	GetOrder(ctx context.Context, id string) (Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]Order, int64, error)
	SetOrderStatus(ctx context.Context, id string, status OrderStatus) (Order, error)

	CreateDeliveryChallan(ctx context.Context, req CreateDeliveryChallanRequest) (DeliveryChallan, error)
	GetDeliveryChallan(ctx context.Context, id string) (DeliveryChallan, error)
	ListDeliveryChallans(ctx context.Context, filter ChallanFilter) ([]DeliveryChallan, int64, error)
	MarkChallanDelivered(ctx context.Context, id string) (DeliveryChallan, error)
}
