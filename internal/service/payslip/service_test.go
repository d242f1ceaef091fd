package payslip

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/payslip"
	"github.com/meridian-erp/erp-backend-go/internal/domain/pettycash"
	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
)

type fakePayslipRepo struct {
	payslip.PayslipRepository
	payslips map[string]payslip.Payslip
}

func (f *fakePayslipRepo) GetByID(_ context.Context, id string) (payslip.Payslip, error) {
	p, ok := f.payslips[id]
	if !ok {
		return payslip.Payslip{}, payslip.ErrPayslipNotFound
	}
	return p, nil
}

func (f *fakePayslipRepo) MarkPaid(_ context.Context, id string) error {
	p, ok := f.payslips[id]
	if !ok {
		return payslip.ErrPayslipNotFound
	}
	p.Status = payslip.StatusPaid
	f.payslips[id] = p
	return nil
}

func (f *fakePayslipRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.payslips[id]; !ok {
		return payslip.ErrPayslipNotFound
	}
	delete(f.payslips, id)
	return nil
}

type fakeAccountRepo struct {
	pettycash.AccountRepository
	accounts map[string]pettycash.Account
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id string) (pettycash.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return pettycash.Account{}, pettycash.ErrAccountNotFound
	}
	return a, nil
}

func (f *fakeAccountRepo) AdjustBalance(_ context.Context, id string, delta decimal.Decimal) error {
	a, ok := f.accounts[id]
	if !ok {
		return pettycash.ErrAccountNotFound
	}
	a.Balance = a.Balance.Add(delta)
	f.accounts[id] = a
	return nil
}

type fakeTransactionRepo struct {
	pettycash.TransactionRepository
	byRef map[string]pettycash.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx pettycash.Transaction) (pettycash.Transaction, error) {
	tx.ID = "tx-" + tx.ReferenceKey
	f.byRef[tx.ReferenceKey] = tx
	return tx, nil
}

func (f *fakeTransactionRepo) GetByReferenceKey(_ context.Context, referenceKey string) (pettycash.Transaction, error) {
	tx, ok := f.byRef[referenceKey]
	if !ok {
		return pettycash.Transaction{}, pettycash.ErrTransactionNotFound
	}
	return tx, nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id string) error {
	for key, tx := range f.byRef {
		if tx.ID == id {
			delete(f.byRef, key)
			return nil
		}
	}
	return pettycash.ErrTransactionNotFound
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, FullName: "Test Employee"}, nil
}

type fakeProfileRepo struct{}

func (f *fakeProfileRepo) Get(_ context.Context) (*settings.CompanyProfile, error) {
	return nil, settings.ErrProfileNotFound
}

func (f *fakeProfileRepo) Upsert(_ context.Context, _ *settings.CompanyProfile) error {
	return nil
}

// fakeTxManager runs fn directly. Abort-on-error still holds for these tests
// because the service touches the payslip last.
type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*PayslipServiceImpl, *fakePayslipRepo, *fakeAccountRepo, *fakeTransactionRepo) {
	payslips := &fakePayslipRepo{payslips: map[string]payslip.Payslip{}}
	accounts := &fakeAccountRepo{accounts: map[string]pettycash.Account{}}
	transactions := &fakeTransactionRepo{byRef: map[string]pettycash.Transaction{}}

	svc := NewPayslipService(payslips, accounts, transactions, &fakeEmployeeRepo{}, &fakeProfileRepo{}, fakeTxManager{}, nil, nil)
	return svc, payslips, accounts, transactions
}

func TestPayPayslipDebitsAccountAndWritesLedger(t *testing.T) {
	svc, payslips, accounts, transactions := newTestService()
	ctx := context.Background()

	payslips.payslips["ps-1"] = payslip.Payslip{
		ID:     "ps-1",
		NetPay: decimal.NewFromInt(1500),
		Status: payslip.StatusDraft,
	}
	accounts.accounts["acc-1"] = pettycash.Account{
		ID:      "acc-1",
		Name:    "Office Cash",
		Balance: decimal.NewFromInt(5000),
	}

	paid, err := svc.PayPayslip(ctx, payslip.PayPayslipRequest{PayslipID: "ps-1", AccountID: "acc-1"})
	require.NoError(t, err)
	assert.Equal(t, payslip.StatusPaid, paid.Status)

	assert.True(t, accounts.accounts["acc-1"].Balance.Equal(decimal.NewFromInt(3500)))

	entry, err := transactions.GetByReferenceKey(ctx, pettycash.PayslipReferenceKey("ps-1"))
	require.NoError(t, err)
	assert.Equal(t, pettycash.DirectionDebit, entry.Direction)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(1500)))
}

func TestPayPayslipInsufficientFunds(t *testing.T) {
	svc, payslips, accounts, _ := newTestService()

	payslips.payslips["ps-1"] = payslip.Payslip{
		ID:     "ps-1",
		NetPay: decimal.NewFromInt(1500),
		Status: payslip.StatusDraft,
	}
	accounts.accounts["acc-1"] = pettycash.Account{
		ID:      "acc-1",
		Balance: decimal.NewFromInt(100),
	}

	_, err := svc.PayPayslip(context.Background(), payslip.PayPayslipRequest{PayslipID: "ps-1", AccountID: "acc-1"})
	assert.ErrorIs(t, err, pettycash.ErrInsufficientFunds)
	assert.Equal(t, payslip.StatusDraft, payslips.payslips["ps-1"].Status)
}

func TestDeletePayslipWithoutLedgerEntry(t *testing.T) {
	svc, payslips, accounts, _ := newTestService()

	payslips.payslips["ps-1"] = payslip.Payslip{ID: "ps-1", Status: payslip.StatusDraft}
	accounts.accounts["acc-1"] = pettycash.Account{
		ID:      "acc-1",
		Balance: decimal.NewFromInt(5000),
	}

	err := svc.DeletePayslip(context.Background(), "ps-1")
	require.NoError(t, err)

	_, ok := payslips.payslips["ps-1"]
	assert.False(t, ok, "payslip should be deleted")
	assert.True(t, accounts.accounts["acc-1"].Balance.Equal(decimal.NewFromInt(5000)), "no account mutation without a ledger entry")
}

func TestDeletePayslipReversesLedgerEntry(t *testing.T) {
	svc, payslips, accounts, transactions := newTestService()
	ctx := context.Background()

	payslips.payslips["ps-1"] = payslip.Payslip{ID: "ps-1", Status: payslip.StatusPaid, NetPay: decimal.NewFromInt(1500)}
	accounts.accounts["acc-1"] = pettycash.Account{
		ID:      "acc-1",
		Balance: decimal.NewFromInt(3500),
	}
	transactions.byRef[pettycash.PayslipReferenceKey("ps-1")] = pettycash.Transaction{
		ID:           "tx-1",
		AccountID:    "acc-1",
		Amount:       decimal.NewFromInt(1500),
		Direction:    pettycash.DirectionDebit,
		ReferenceKey: pettycash.PayslipReferenceKey("ps-1"),
	}

	err := svc.DeletePayslip(ctx, "ps-1")
	require.NoError(t, err)

	_, ok := payslips.payslips["ps-1"]
	assert.False(t, ok, "payslip should be deleted")
	assert.True(t, accounts.accounts["acc-1"].Balance.Equal(decimal.NewFromInt(5000)), "debit should be credited back")

	_, err = transactions.GetByReferenceKey(ctx, pettycash.PayslipReferenceKey("ps-1"))
	assert.ErrorIs(t, err, pettycash.ErrTransactionNotFound)
}

func TestDeletePayslipAbortsWhenAccountMissing(t *testing.T) {
	svc, payslips, _, transactions := newTestService()

	payslips.payslips["ps-1"] = payslip.Payslip{ID: "ps-1", Status: payslip.StatusPaid, NetPay: decimal.NewFromInt(1500)}
	transactions.byRef[pettycash.PayslipReferenceKey("ps-1")] = pettycash.Transaction{
		ID:           "tx-1",
		AccountID:    "gone",
		Amount:       decimal.NewFromInt(1500),
		Direction:    pettycash.DirectionDebit,
		ReferenceKey: pettycash.PayslipReferenceKey("ps-1"),
	}

	err := svc.DeletePayslip(context.Background(), "ps-1")
	assert.ErrorIs(t, err, pettycash.ErrAccountNotFound)

	_, ok := payslips.payslips["ps-1"]
	assert.True(t, ok, "payslip must remain when the transaction aborts")
}
