package pettycash

import (
	"context"
)

// PettyCashService keeps account balances and the transaction ledger in step.
type PettyCashService interface {
	CreateAccount(ctx context.Context, req CreateAccountRequest) (Account, error)
	GetAccount(ctx context.Context, id string) (Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	RecordTransaction(ctx context.Context, req CreateTransactionRequest) (Transaction, error)
	ListTransactions(ctx context.Context, accountID string, page, limit int) ([]Transaction, int64, error)
}
