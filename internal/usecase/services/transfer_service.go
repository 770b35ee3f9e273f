package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/api-sage/bank-back-office/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

// TransferService is the transfer ledger. RegisterTransfer only records that
// a transfer happened; PerformTransfer is the composite operation that also
// moves the money, inside the guard's balance lock.
type TransferService struct {
	transferRepo repo_interfaces.TransferRepository
	accountRepo  repo_interfaces.AccountRepository
	guard        *DeletionGuard
}

func NewTransferService(
	transferRepo repo_interfaces.TransferRepository,
	accountRepo repo_interfaces.AccountRepository,
	guard *DeletionGuard,
) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
		guard:        guard,
	}
}

func (s *TransferService) RegisterTransfer(ctx context.Context, input service_interfaces.RegisterTransferInput) (domain.Transfer, error) {
	logger.Info("transfer service register transfer request", logger.Fields{
		"outcomeAccountId": input.OutcomeAccountID,
		"incomeAccountId":  input.IncomeAccountID,
		"amount":           input.Amount.String(),
	})

	transfer, err := s.buildTransfer(ctx, input)
	if err != nil {
		return domain.Transfer{}, err
	}

	created, err := s.transferRepo.Create(ctx, transfer)
	if err != nil {
		logger.Error("transfer service register transfer repository failed", err, logger.Fields{
			"transferId": transfer.ID,
		})
		return domain.Transfer{}, err
	}

	logger.Info("transfer service register transfer success", logger.Fields{
		"transferId": created.ID,
	})
	return created, nil
}

func (s *TransferService) PerformTransfer(ctx context.Context, input service_interfaces.RegisterTransferInput) (domain.Transfer, error) {
	logger.Info("transfer service perform transfer request", logger.Fields{
		"outcomeAccountId": input.OutcomeAccountID,
		"incomeAccountId":  input.IncomeAccountID,
		"amount":           input.Amount.String(),
	})

	transfer, err := s.buildTransfer(ctx, input)
	if err != nil {
		return domain.Transfer{}, err
	}

	var created domain.Transfer
	err = s.guard.WithBalanceLock(func() error {
		outcome, err := s.accountRepo.GetByID(ctx, input.OutcomeAccountID)
		if err != nil {
			return err
		}
		income, err := s.accountRepo.GetByID(ctx, input.IncomeAccountID)
		if err != nil {
			return err
		}

		if input.Amount.GreaterThan(outcome.Balance) {
			return fmt.Errorf("%w: amount exceeds the outcome account balance", domain.ErrInsufficientBalance)
		}

		outcome.Balance = outcome.Balance.Sub(input.Amount)
		income.Balance = income.Balance.Add(input.Amount)

		if _, err := s.accountRepo.Update(ctx, outcome.ID, outcome); err != nil {
			return err
		}
		if _, err := s.accountRepo.Update(ctx, income.ID, income); err != nil {
			return err
		}

		created, err = s.transferRepo.Create(ctx, transfer)
		return err
	})
	if err != nil {
		return domain.Transfer{}, err
	}

	logger.Info("transfer service perform transfer success", logger.Fields{
		"transferId": created.ID,
	})
	return created, nil
}

func (s *TransferService) UpdateTransfer(ctx context.Context, id string, patch service_interfaces.UpdateTransferInput) (domain.Transfer, error) {
	current, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Transfer{}, err
	}

	if patch.OutcomeAccountID != nil {
		if _, err := s.accountRepo.GetByID(ctx, *patch.OutcomeAccountID); err != nil {
			return domain.Transfer{}, err
		}
		current.OutcomeAccountID = *patch.OutcomeAccountID
	}
	if patch.IncomeAccountID != nil {
		if _, err := s.accountRepo.GetByID(ctx, *patch.IncomeAccountID); err != nil {
			return domain.Transfer{}, err
		}
		current.IncomeAccountID = *patch.IncomeAccountID
	}
	if current.OutcomeAccountID == current.IncomeAccountID {
		return domain.Transfer{}, fmt.Errorf("%w: outcome and income accounts cannot be the same", domain.ErrConflict)
	}
	if patch.Amount != nil {
		if !patch.Amount.IsPositive() {
			return domain.Transfer{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrConflict)
		}
		current.Amount = *patch.Amount
	}
	if patch.Reason != nil {
		current.Reason = *patch.Reason
	}
	if patch.DateTime != nil {
		current.DateTime = *patch.DateTime
	}

	return s.transferRepo.Update(ctx, id, current)
}

func (s *TransferService) DeleteTransfer(ctx context.Context, id string, soft bool) error {
	logger.Info("transfer service delete transfer", logger.Fields{
		"transferId": id,
		"soft":       soft,
	})
	if soft {
		return s.transferRepo.SoftDelete(ctx, id)
	}
	return s.transferRepo.Delete(ctx, id)
}

func (s *TransferService) GetTransfer(ctx context.Context, id string) (domain.Transfer, error) {
	return s.transferRepo.GetByID(ctx, id)
}

func (s *TransferService) FindAllTransfers(ctx context.Context, pagination commons.Pagination) ([]domain.Transfer, error) {
	transfers, err := s.transferRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return commons.Paginate(transfers, pagination), nil
}

func (s *TransferService) FindOutcomeByDateRange(ctx context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error) {
	return s.transferRepo.GetOutcomeByDateRange(ctx, accountID, start, end)
}

func (s *TransferService) FindIncomeByDateRange(ctx context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error) {
	return s.transferRepo.GetIncomeByDateRange(ctx, accountID, start, end)
}

func (s *TransferService) buildTransfer(ctx context.Context, input service_interfaces.RegisterTransferInput) (domain.Transfer, error) {
	if !input.Amount.IsPositive() {
		return domain.Transfer{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrConflict)
	}
	if input.OutcomeAccountID == input.IncomeAccountID {
		return domain.Transfer{}, fmt.Errorf("%w: outcome and income accounts cannot be the same", domain.ErrConflict)
	}

	if _, err := s.accountRepo.GetByID(ctx, input.OutcomeAccountID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Transfer{}, fmt.Errorf("%w: outcome account does not exist", domain.ErrRecordNotFound)
		}
		return domain.Transfer{}, err
	}
	if _, err := s.accountRepo.GetByID(ctx, input.IncomeAccountID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Transfer{}, fmt.Errorf("%w: income account does not exist", domain.ErrRecordNotFound)
		}
		return domain.Transfer{}, err
	}

	return domain.Transfer{
		ID:               uuid.NewString(),
		OutcomeAccountID: input.OutcomeAccountID,
		IncomeAccountID:  input.IncomeAccountID,
		Amount:           input.Amount,
		Reason:           input.Reason,
		DateTime:         time.Now().UTC(),
	}, nil
}
