package pettycash

import (
	"context"
	"fmt"

	"github.com/meridian-erp/erp-backend-go/internal/domain/pettycash"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type PettyCashServiceImpl struct {
	pettycash.AccountRepository
	transactions pettycash.TransactionRepository
	tm           database.TxManager
}

func NewPettyCashService(
	accountRepo pettycash.AccountRepository,
	transactionRepo pettycash.TransactionRepository,
	tm database.TxManager,
) *PettyCashServiceImpl {
	return &PettyCashServiceImpl{
		AccountRepository: accountRepo,
		transactions:      transactionRepo,
		tm:                tm,
	}
}

func (s *PettyCashServiceImpl) CreateAccount(ctx context.Context, req pettycash.CreateAccountRequest) (pettycash.Account, error) {
	if err := req.Validate(); err != nil {
		return pettycash.Account{}, err
	}
	return s.AccountRepository.Create(ctx, pettycash.Account{
		Name:    req.Name,
		Balance: req.OpeningBalance,
	})
}

func (s *PettyCashServiceImpl) GetAccount(ctx context.Context, id string) (pettycash.Account, error) {
	return s.AccountRepository.GetByID(ctx, id)
}

func (s *PettyCashServiceImpl) ListAccounts(ctx context.Context) ([]pettycash.Account, error) {
	return s.AccountRepository.List(ctx)
}

// RecordTransaction posts a manual ledger entry and applies it to the account
// balance in one transaction. Debits may not overdraw the account.
func (s *PettyCashServiceImpl) RecordTransaction(ctx context.Context, req pettycash.CreateTransactionRequest) (pettycash.Transaction, error) {
	if err := req.Validate(); err != nil {
		return pettycash.Transaction{}, err
	}

	account, err := s.AccountRepository.GetByID(ctx, req.AccountID)
	if err != nil {
		return pettycash.Transaction{}, err
	}

	direction := pettycash.Direction(req.Direction)
	delta := req.Amount
	if direction == pettycash.DirectionDebit {
		if account.Balance.LessThan(req.Amount) {
			return pettycash.Transaction{}, pettycash.ErrInsufficientFunds
		}
		delta = delta.Neg()
	}

	var created pettycash.Transaction
	err = s.tm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.AccountRepository.AdjustBalance(txCtx, account.ID, delta); err != nil {
			return err
		}
		created, err = s.transactions.Create(txCtx, pettycash.Transaction{
			AccountID:    account.ID,
			Amount:       req.Amount,
			Direction:    direction,
			ReferenceKey: req.ReferenceKey,
			Note:         req.Note,
		})
		return err
	})
	if err != nil {
		return pettycash.Transaction{}, fmt.Errorf("failed to record transaction: %w", err)
	}

	return created, nil
}

func (s *PettyCashServiceImpl) ListTransactions(ctx context.Context, accountID string, page, limit int) ([]pettycash.Transaction, int64, error) {
	if _, err := s.AccountRepository.GetByID(ctx, accountID); err != nil {
		return nil, 0, err
	}
	return s.transactions.ListByAccount(ctx, accountID, page, limit)
}
