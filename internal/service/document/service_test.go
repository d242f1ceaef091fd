package document

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/erp-backend-go/internal/domain/document"
	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
)

type fakeInvoiceRepo struct {
	document.InvoiceRepository
	invoices map[string]document.Invoice
	counters map[int]int
}

func (f *fakeInvoiceRepo) NextSequence(_ context.Context, year int) (int, error) {
	f.counters[year]++
	return f.counters[year], nil
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv document.Invoice) (document.Invoice, error) {
	inv.ID = "inv-" + inv.Number
	f.invoices[inv.ID] = inv
	return inv, nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (document.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return document.Invoice{}, document.ErrInvoiceNotFound
	}
	return inv, nil
}

func (f *fakeInvoiceRepo) UpdateStatus(_ context.Context, id string, status document.InvoiceStatus) error {
	inv, ok := f.invoices[id]
	if !ok {
		return document.ErrInvoiceNotFound
	}
	inv.Status = status
	f.invoices[id] = inv
	return nil
}

type fakeFinancialSettingsRepo struct {
	settings.FinancialSettingsRepository
	settings *settings.FinancialSettings
}

func (f *fakeFinancialSettingsRepo) Get(_ context.Context) (*settings.FinancialSettings, error) {
	if f.settings == nil {
		return nil, settings.ErrSettingsNotFound
	}
	return f.settings, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newInvoiceService(fs *settings.FinancialSettings) (*DocumentServiceImpl, *fakeInvoiceRepo) {
	invoices := &fakeInvoiceRepo{
		invoices: map[string]document.Invoice{},
		counters: map[int]int{},
	}
	svc := NewDocumentService(invoices, nil, nil, &fakeFinancialSettingsRepo{settings: fs}, fakeTxManager{})
	return svc, invoices
}

func invoiceRequest(customer, issueDate string) document.CreateInvoiceRequest {
	return document.CreateInvoiceRequest{
		CustomerName: customer,
		IssueDate:    issueDate,
		Items: document.LineItems{
			{Description: "Service fee", Quantity: 2, UnitPrice: decimal.NewFromInt(150)},
			{Description: "Spare parts", Quantity: 1, UnitPrice: decimal.NewFromInt(75)},
		},
	}
}

func TestCreateInvoiceNumbering(t *testing.T) {
	svc, _ := newInvoiceService(&settings.FinancialSettings{InvoiceNumberPrefix: "MRD"})

	first, err := svc.CreateInvoice(context.Background(), invoiceRequest("Acme", "2026-03-01"))
	require.NoError(t, err)
	second, err := svc.CreateInvoice(context.Background(), invoiceRequest("Globex", "2026-03-05"))
	require.NoError(t, err)

	assert.Equal(t, "MRD-2026-0001", first.Number)
	assert.Equal(t, "MRD-2026-0002", second.Number)
	assert.Equal(t, document.InvoiceStatusDraft, first.Status)
}

func TestCreateInvoiceNumberingResetsPerYear(t *testing.T) {
	svc, _ := newInvoiceService(&settings.FinancialSettings{InvoiceNumberPrefix: "MRD"})

	_, err := svc.CreateInvoice(context.Background(), invoiceRequest("Acme", "2026-12-20"))
	require.NoError(t, err)
	next, err := svc.CreateInvoice(context.Background(), invoiceRequest("Acme", "2027-01-04"))
	require.NoError(t, err)

	assert.Equal(t, "MRD-2027-0001", next.Number)
}

func TestCreateInvoiceDefaultPrefix(t *testing.T) {
	svc, _ := newInvoiceService(nil)

	inv, err := svc.CreateInvoice(context.Background(), invoiceRequest("Acme", "2026-06-15"))
	require.NoError(t, err)

	assert.Equal(t, "INV-2026-0001", inv.Number)
}

func TestCreateInvoiceDerivesTotal(t *testing.T) {
	svc, _ := newInvoiceService(&settings.FinancialSettings{InvoiceNumberPrefix: "MRD"})

	inv, err := svc.CreateInvoice(context.Background(), invoiceRequest("Acme", "2026-03-01"))
	require.NoError(t, err)

	// 2 x 150 + 1 x 75
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(375)))
}

func TestSetInvoiceStatusVoidIsFinal(t *testing.T) {
	svc, repo := newInvoiceService(&settings.FinancialSettings{InvoiceNumberPrefix: "MRD"})

	inv, err := svc.CreateInvoice(context.Background(), invoiceRequest("Acme", "2026-03-01"))
	require.NoError(t, err)

	_, err = svc.SetInvoiceStatus(context.Background(), inv.ID, document.InvoiceStatusVoid)
	require.NoError(t, err)

	_, err = svc.SetInvoiceStatus(context.Background(), inv.ID, document.InvoiceStatusPaid)
	assert.ErrorIs(t, err, document.ErrInvoiceVoid)
	assert.Equal(t, document.InvoiceStatusVoid, repo.invoices[inv.ID].Status)
}
