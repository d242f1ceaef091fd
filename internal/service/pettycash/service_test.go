package pettycash

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/erp-backend-go/internal/domain/pettycash"
)

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
	created []pettycash.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx pettycash.Transaction) (pettycash.Transaction, error) {
	tx.ID = "tx-" + tx.ReferenceKey
	f.created = append(f.created, tx)
	return tx, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestRecordTransactionCredit(t *testing.T) {
	accounts := &fakeAccountRepo{accounts: map[string]pettycash.Account{
		"acc-1": {ID: "acc-1", Name: "Office", Balance: decimal.NewFromInt(100)},
	}}
	transactions := &fakeTransactionRepo{}
	svc := NewPettyCashService(accounts, transactions, fakeTxManager{})

	created, err := svc.RecordTransaction(context.Background(), pettycash.CreateTransactionRequest{
		AccountID:    "acc-1",
		Amount:       decimal.NewFromInt(40),
		Direction:    string(pettycash.DirectionCredit),
		ReferenceKey: "manual_1",
	})
	require.NoError(t, err)

	assert.Equal(t, pettycash.DirectionCredit, created.Direction)
	assert.True(t, accounts.accounts["acc-1"].Balance.Equal(decimal.NewFromInt(140)))
}

func TestRecordTransactionDebit(t *testing.T) {
	accounts := &fakeAccountRepo{accounts: map[string]pettycash.Account{
		"acc-1": {ID: "acc-1", Name: "Office", Balance: decimal.NewFromInt(100)},
	}}
	transactions := &fakeTransactionRepo{}
	svc := NewPettyCashService(accounts, transactions, fakeTxManager{})

	_, err := svc.RecordTransaction(context.Background(), pettycash.CreateTransactionRequest{
		AccountID:    "acc-1",
		Amount:       decimal.NewFromInt(60),
		Direction:    string(pettycash.DirectionDebit),
		ReferenceKey: "manual_2",
	})
	require.NoError(t, err)

	assert.True(t, accounts.accounts["acc-1"].Balance.Equal(decimal.NewFromInt(40)))
	require.Len(t, transactions.created, 1)
	// The ledger keeps the gross amount; the sign lives in the direction.
	assert.True(t, transactions.created[0].Amount.Equal(decimal.NewFromInt(60)))
}

func TestRecordTransactionOverdraw(t *testing.T) {
	accounts := &fakeAccountRepo{accounts: map[string]pettycash.Account{
		"acc-1": {ID: "acc-1", Name: "Office", Balance: decimal.NewFromInt(25)},
	}}
	transactions := &fakeTransactionRepo{}
	svc := NewPettyCashService(accounts, transactions, fakeTxManager{})

	_, err := svc.RecordTransaction(context.Background(), pettycash.CreateTransactionRequest{
		AccountID:    "acc-1",
		Amount:       decimal.NewFromInt(26),
		Direction:    string(pettycash.DirectionDebit),
		ReferenceKey: "manual_3",
	})
	require.ErrorIs(t, err, pettycash.ErrInsufficientFunds)

	assert.True(t, accounts.accounts["acc-1"].Balance.Equal(decimal.NewFromInt(25)))
	assert.Empty(t, transactions.created)
}

func TestRecordTransactionUnknownAccount(t *testing.T) {
	svc := NewPettyCashService(&fakeAccountRepo{accounts: map[string]pettycash.Account{}}, &fakeTransactionRepo{}, fakeTxManager{})

	_, err := svc.RecordTransaction(context.Background(), pettycash.CreateTransactionRequest{
		AccountID:    "missing",
		Amount:       decimal.NewFromInt(10),
		Direction:    string(pettycash.DirectionCredit),
		ReferenceKey: "manual_4",
	})
	assert.ErrorIs(t, err, pettycash.ErrAccountNotFound)
}
