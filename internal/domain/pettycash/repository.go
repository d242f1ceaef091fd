package pettycash

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	List(ctx context.Context) ([]Account, error)
	// AdjustBalance adds delta (negative to debit) to the account balance.
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction) (Transaction, error)
	GetByReferenceKey(ctx context.Context, referenceKey string) (Transaction, error)
	ListByAccount(ctx context.Context, accountID string, page, limit int) ([]Transaction, int64, error)
	Delete(ctx context.Context, id string) error
}
