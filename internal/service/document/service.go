package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/document"
	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type DocumentServiceImpl struct {
	invoices          document.InvoiceRepository
	orders            document.OrderRepository
	challans          document.DeliveryChallanRepository
	financialSettings settings.FinancialSettingsRepository
	tm                database.TxManager
}

func NewDocumentService(
	invoiceRepo document.InvoiceRepository,
	orderRepo document.OrderRepository,
	challanRepo document.DeliveryChallanRepository,
	financialSettings settings.FinancialSettingsRepository,
	tm database.TxManager,
) *DocumentServiceImpl {
	return &DocumentServiceImpl{
		invoices:          invoiceRepo,
		orders:            orderRepo,
		challans:          challanRepo,
		financialSettings: financialSettings,
		tm:                tm,
	}
}

func (s *DocumentServiceImpl) invoicePrefix(ctx context.Context) (string, error) {
	fs, err := s.financialSettings.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return "INV", nil
		}
		return "", err
	}
	return fs.InvoiceNumberPrefix, nil
}

func formatNumber(prefix string, year, counter int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, counter)
}

func mustParseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// CreateInvoice numbers the document from the per-year sequence and derives
// the total from its line items; a client-supplied total is never trusted.
func (s *DocumentServiceImpl) CreateInvoice(ctx context.Context, req document.CreateInvoiceRequest) (document.Invoice, error) {
	if err := req.Validate(); err != nil {
		return document.Invoice{}, err
	}

	prefix, err := s.invoicePrefix(ctx)
	if err != nil {
		return document.Invoice{}, err
	}

	issueDate, dueDate := req.Dates()

	var created document.Invoice
	err = s.tm.RunInTx(ctx, func(txCtx context.Context) error {
		counter, err := s.invoices.NextSequence(txCtx, issueDate.Year())
		if err != nil {
			return err
		}
		created, err = s.invoices.Create(txCtx, document.Invoice{
			Number:       formatNumber(prefix, issueDate.Year(), counter),
			CustomerName: req.CustomerName,
			IssueDate:    issueDate,
			DueDate:      dueDate,
			Items:        req.Items,
			Total:        req.Items.Total(),
			Status:       document.InvoiceStatusDraft,
		})
		return err
	})
	if err != nil {
		return document.Invoice{}, err
	}

	return created, nil
}

func (s *DocumentServiceImpl) GetInvoice(ctx context.Context, id string) (document.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *DocumentServiceImpl) ListInvoices(ctx context.Context, filter document.InvoiceFilter) ([]document.Invoice, int64, error) {
	return s.invoices.List(ctx, filter)
}

func (s *DocumentServiceImpl) SetInvoiceStatus(ctx context.Context, id string, status document.InvoiceStatus) (document.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return document.Invoice{}, err
	}
	if inv.Status == document.InvoiceStatusVoid {
		return document.Invoice{}, document.ErrInvoiceVoid
	}
	if err := s.invoices.UpdateStatus(ctx, id, status); err != nil {
		return document.Invoice{}, err
	}
	return s.invoices.GetByID(ctx, id)
}

func (s *DocumentServiceImpl) CreateOrder(ctx context.Context, req document.CreateOrderRequest) (document.Order, error) {
	if err := req.Validate(); err != nil {
		return document.Order{}, err
	}

	date := mustParseDate(req.OrderDate)

	var created document.Order
	err := s.tm.RunInTx(ctx, func(txCtx context.Context) error {
		counter, err := s.orders.NextSequence(txCtx, date.Year())
		if err != nil {
			return err
		}
		created, err = s.orders.Create(txCtx, document.Order{
			Number:       formatNumber("ORD", date.Year(), counter),
			CustomerName: req.CustomerName,
			OrderDate:    date,
			Items:        req.Items,
			Total:        req.Items.Total(),
			Status:       document.OrderStatusOpen,
		})
		return err
	})
	if err != nil {
		return document.Order{}, err
	}

	return created, nil
}

func (s *DocumentServiceImpl) GetOrder(ctx context.Context, id string) (document.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *DocumentServiceImpl) ListOrders(ctx context.Context, filter document.OrderFilter) ([]document.Order, int64, error) {
	return s.orders.List(ctx, filter)
}

func (s *DocumentServiceImpl) SetOrderStatus(ctx context.Context, id string, status document.OrderStatus) (document.Order, error) {
	if _, err := s.orders.GetByID(ctx, id); err != nil {
		return document.Order{}, err
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return document.Order{}, err
	}
	return s.orders.GetByID(ctx, id)
}

func (s *DocumentServiceImpl) CreateDeliveryChallan(ctx context.Context, req document.CreateDeliveryChallanRequest) (document.DeliveryChallan, error) {
	if err := req.Validate(); err != nil {
		return document.DeliveryChallan{}, err
	}

	if req.LinkedInvoiceID != nil {
		if _, err := s.invoices.GetByID(ctx, *req.LinkedInvoiceID); err != nil {
			return document.DeliveryChallan{}, err
		}
	}

	date := mustParseDate(req.ChallanDate)

	var created document.DeliveryChallan
	err := s.tm.RunInTx(ctx, func(txCtx context.Context) error {
		counter, err := s.challans.NextSequence(txCtx, date.Year())
		if err != nil {
			return err
		}
		created, err = s.challans.Create(txCtx, document.DeliveryChallan{
			Number:          formatNumber("DC", date.Year(), counter),
			CustomerName:    req.CustomerName,
			ChallanDate:     date,
			Items:           req.Items,
			LinkedInvoiceID: req.LinkedInvoiceID,
			Status:          document.ChallanStatusOpen,
		})
		return err
	})
	if err != nil {
		return document.DeliveryChallan{}, err
	}

	return created, nil
}

func (s *DocumentServiceImpl) GetDeliveryChallan(ctx context.Context, id string) (document.DeliveryChallan, error) {
	return s.challans.GetByID(ctx, id)
}

func (s *DocumentServiceImpl) ListDeliveryChallans(ctx context.Context, filter document.ChallanFilter) ([]document.DeliveryChallan, int64, error) {
	return s.challans.List(ctx, filter)
}

func (s *DocumentServiceImpl) MarkChallanDelivered(ctx context.Context, id string) (document.DeliveryChallan, error) {
	if _, err := s.challans.GetByID(ctx, id); err != nil {
		return document.DeliveryChallan{}, err
	}
	if err := s.challans.UpdateStatus(ctx, id, document.ChallanStatusDelivered); err != nil {
		return document.DeliveryChallan{}, err
	}
	return s.challans.GetByID(ctx, id)
}
