package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/meridian-erp/erp-backend-go/internal/domain/pettycash"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type pettyCashAccountRepositoryImpl struct {
	db *database.DB
}

func NewPettyCashAccountRepository(db *database.DB) pettycash.AccountRepository {
	return &pettyCashAccountRepositoryImpl{db: db}
}

func (r *pettyCashAccountRepositoryImpl) Create(ctx context.Context, account pettycash.Account) (pettycash.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO petty_cash_accounts (id, name, balance, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, account.Name, account.Balance).Scan(
		&account.ID, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return pettycash.Account{}, fmt.Errorf("failed to create petty cash account: %w", err)
	}

	return account, nil
}

func (r *pettyCashAccountRepositoryImpl) GetByID(ctx context.Context, id string) (pettycash.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, balance, created_at, updated_at
		FROM petty_cash_accounts
		WHERE id = $1
	`

	var a pettycash.Account
	err := q.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pettycash.Account{}, pettycash.ErrAccountNotFound
		}
		return pettycash.Account{}, fmt.Errorf("failed to get petty cash account: %w", err)
	}

	return a, nil
}

func (r *pettyCashAccountRepositoryImpl) List(ctx context.Context) ([]pettycash.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, balance, created_at, updated_at
		FROM petty_cash_accounts
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list petty cash accounts: %w", err)
	}
	defer rows.Close()

	var accounts []pettycash.Account
	for rows.Next() {
		var a pettycash.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (r *pettyCashAccountRepositoryImpl) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE petty_cash_accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2
	`
	tag, err := q.Exec(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("failed to adjust account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pettycash.ErrAccountNotFound
	}
	return nil
}

type pettyCashTransactionRepositoryImpl struct {
	db *database.DB
}

func NewPettyCashTransactionRepository(db *database.DB) pettycash.TransactionRepository {
	return &pettyCashTransactionRepositoryImpl{db: db}
}

func (r *pettyCashTransactionRepositoryImpl) Create(ctx context.Context, tx pettycash.Transaction) (pettycash.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO petty_cash_transactions (id, account_id, amount, direction, reference_key, note, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		tx.AccountID, tx.Amount, tx.Direction, tx.ReferenceKey, tx.Note,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return pettycash.Transaction{}, fmt.Errorf("failed to create petty cash transaction: %w", err)
	}

	return tx, nil
}

func (r *pettyCashTransactionRepositoryImpl) GetByReferenceKey(ctx context.Context, referenceKey string) (pettycash.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, amount, direction, reference_key, note, created_at
		FROM petty_cash_transactions
		WHERE reference_key = $1
	`

	var tx pettycash.Transaction
	err := q.QueryRow(ctx, query, referenceKey).Scan(
		&tx.ID, &tx.AccountID, &tx.Amount, &tx.Direction, &tx.ReferenceKey, &tx.Note, &tx.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pettycash.Transaction{}, pettycash.ErrTransactionNotFound
		}
		return pettycash.Transaction{}, fmt.Errorf("failed to get petty cash transaction: %w", err)
	}

	return tx, nil
}

func (r *pettyCashTransactionRepositoryImpl) ListByAccount(ctx context.Context, accountID string, page, limit int) ([]pettycash.Transaction, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `SELECT COUNT(*) FROM petty_cash_transactions WHERE account_id = $1`
	var total int64
	if err := q.QueryRow(ctx, countQuery, accountID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count petty cash transactions: %w", err)
	}

	query := `
		SELECT id, account_id, amount, direction, reference_key, note, created_at
		FROM petty_cash_transactions
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, accountID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list petty cash transactions: %w", err)
	}
	defer rows.Close()

	var transactions []pettycash.Transaction
	for rows.Next() {
		var tx pettycash.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.AccountID, &tx.Amount, &tx.Direction, &tx.ReferenceKey, &tx.Note, &tx.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, total, rows.Err()
}

func (r *pettyCashTransactionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM petty_cash_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete petty cash transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pettycash.ErrTransactionNotFound
	}
	return nil
}
