package payslip

import (
	"context"
	"errors"
	"fmt"

	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/payslip"
	"github.com/meridian-erp/erp-backend-go/internal/domain/pettycash"
	"github.com/meridian-erp/erp-backend-go/internal/domain/settings"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/storage"
)

type Notifier interface {
	PayslipGenerated(ctx context.Context, p payslip.Payslip)
}

type PayslipServiceImpl struct {
	payslip.PayslipRepository
	accounts     pettycash.AccountRepository
	transactions pettycash.TransactionRepository
	employees    employee.EmployeeRepository
	profile      settings.CompanyProfileRepository
	tm           database.TxManager
	notifier     Notifier
	files        storage.FileStorage
}

func NewPayslipService(
	payslipRepo payslip.PayslipRepository,
	accountRepo pettycash.AccountRepository,
	transactionRepo pettycash.TransactionRepository,
	employeeRepo employee.EmployeeRepository,
	profileRepo settings.CompanyProfileRepository,
	tm database.TxManager,
	notifier Notifier,
	files storage.FileStorage,
) *PayslipServiceImpl {
	return &PayslipServiceImpl{
		PayslipRepository: payslipRepo,
		accounts:          accountRepo,
		transactions:      transactionRepo,
		employees:         employeeRepo,
		profile:           profileRepo,
		tm:                tm,
		notifier:          notifier,
		files:             files,
	}
}

func (s *PayslipServiceImpl) CreatePayslip(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.Payslip, error) {
	if err := req.Validate(); err != nil {
		return payslip.Payslip{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return payslip.Payslip{}, err
	}

	p := payslip.Payslip{
		EmployeeID:  req.EmployeeID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Basic:       req.Basic,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		Status:      payslip.StatusDraft,
	}
	p.NetPay = p.Net()

	created, err := s.PayslipRepository.Create(ctx, p)
	if err != nil {
		return payslip.Payslip{}, err
	}

	if s.notifier != nil {
		s.notifier.PayslipGenerated(ctx, created)
	}

	return created, nil
}

func (s *PayslipServiceImpl) GetPayslip(ctx context.Context, id string) (payslip.Payslip, error) {
	return s.PayslipRepository.GetByID(ctx, id)
}

func (s *PayslipServiceImpl) ListPayslips(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, int64, error) {
	return s.PayslipRepository.List(ctx, filter)
}

// PayPayslip marks the payslip paid and debits the chosen petty-cash account,
// recording a ledger entry keyed to the payslip so the deletion path can find
// and reverse it later. Both writes commit or neither does.
func (s *PayslipServiceImpl) PayPayslip(ctx context.Context, req payslip.PayPayslipRequest) (payslip.Payslip, error) {
	if err := req.Validate(); err != nil {
		return payslip.Payslip{}, err
	}

	p, err := s.PayslipRepository.GetByID(ctx, req.PayslipID)
	if err != nil {
		return payslip.Payslip{}, err
	}
	if p.Status == payslip.StatusPaid {
		return payslip.Payslip{}, payslip.ErrPayslipAlreadyPaid
	}

	account, err := s.accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return payslip.Payslip{}, err
	}
	if account.Balance.LessThan(p.NetPay) {
		return payslip.Payslip{}, pettycash.ErrInsufficientFunds
	}

	err = s.tm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.accounts.AdjustBalance(txCtx, account.ID, p.NetPay.Neg()); err != nil {
			return err
		}
		if _, err := s.transactions.Create(txCtx, pettycash.Transaction{
			AccountID:    account.ID,
			Amount:       p.NetPay,
			Direction:    pettycash.DirectionDebit,
			ReferenceKey: pettycash.PayslipReferenceKey(p.ID),
		}); err != nil {
			return err
		}
		return s.PayslipRepository.MarkPaid(txCtx, p.ID)
	})
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to pay payslip: %w", err)
	}

	return s.PayslipRepository.GetByID(ctx, p.ID)
}

// DeletePayslip removes a payslip and, when a ledger entry keyed
// "payslip_<id>" exists, reverses its effect on the account balance and
// deletes the entry, all inside one transaction. A missing ledger entry is
// fine (the payslip was never paid); a missing account is not, and aborts the
// whole deletion.
func (s *PayslipServiceImpl) DeletePayslip(ctx context.Context, id string) error {
	if _, err := s.PayslipRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return s.tm.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.transactions.GetByReferenceKey(txCtx, pettycash.PayslipReferenceKey(id))
		if err != nil && !errors.Is(err, pettycash.ErrTransactionNotFound) {
			return err
		}

		if err == nil {
			// Reverse the ledger entry. A debit took money out of the
			// account, so reversal credits it back.
			delta := entry.Amount
			if entry.Direction == pettycash.DirectionCredit {
				delta = delta.Neg()
			}
			if err := s.accounts.AdjustBalance(txCtx, entry.AccountID, delta); err != nil {
				return err
			}
			if err := s.transactions.Delete(txCtx, entry.ID); err != nil {
				return err
			}
		}

		return s.PayslipRepository.Delete(txCtx, id)
	})
}
