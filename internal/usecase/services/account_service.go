package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/bank-back-office/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

// AccountService is the account and account-type registry. Balance mutations
// run under the deletion guard's balance lock so debits, credits and
// balance-guarded deletions serialize against each other.
type AccountService struct {
	accountRepo     repo_interfaces.AccountRepository
	accountTypeRepo repo_interfaces.AccountTypeRepository
	customerRepo    repo_interfaces.CustomerRepository
	guard           *DeletionGuard
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	accountTypeRepo repo_interfaces.AccountTypeRepository,
	customerRepo repo_interfaces.CustomerRepository,
	guard *DeletionGuard,
) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		accountTypeRepo: accountTypeRepo,
		customerRepo:    customerRepo,
		guard:           guard,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, customerID, accountTypeID string) (domain.Account, error) {
	logger.Info("account service create account request", logger.Fields{
		"customerId":    customerID,
		"accountTypeId": accountTypeID,
	})

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Account{}, fmt.Errorf("%w: customer does not exist", domain.ErrRecordNotFound)
		}
		return domain.Account{}, err
	}
	if _, err := s.accountTypeRepo.GetByID(ctx, accountTypeID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Account{}, fmt.Errorf("%w: account type does not exist", domain.ErrRecordNotFound)
		}
		return domain.Account{}, err
	}

	account := domain.Account{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		AccountTypeID: accountTypeID,
		Balance:       decimal.Zero,
		State:         true,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service create account repository failed", err, logger.Fields{
			"customerId": customerID,
		})
		return domain.Account{}, err
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId": created.ID,
	})
	return created, nil
}

func (s *AccountService) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

// GetAccountIncludingDeleted is the audit read; it is the only lookup that
// sees soft-deleted accounts.
func (s *AccountService) GetAccountIncludingDeleted(ctx context.Context, id string) (domain.Account, error) {
	return s.accountRepo.GetByIDIncludingDeleted(ctx, id)
}

func (s *AccountService) GetBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *AccountService) AddBalance(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", domain.ErrConflict)
	}

	var balance decimal.Decimal
	err := s.guard.WithBalanceLock(func() error {
		account, err := s.accountRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		account.Balance = account.Balance.Add(amount)
		updated, err := s.accountRepo.Update(ctx, id, account)
		if err != nil {
			return err
		}
		balance = updated.Balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	logger.Info("account service add balance success", logger.Fields{
		"accountId": id,
		"amount":    amount.String(),
		"balance":   balance.String(),
	})
	return balance, nil
}

// RemoveBalance debits the account. A debit larger than the current balance
// fails with ErrInsufficientBalance and leaves the balance untouched.
func (s *AccountService) RemoveBalance(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", domain.ErrConflict)
	}

	var balance decimal.Decimal
	err := s.guard.WithBalanceLock(func() error {
		account, err := s.accountRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if amount.GreaterThan(account.Balance) {
			return fmt.Errorf("%w: amount exceeds the account balance", domain.ErrInsufficientBalance)
		}
		account.Balance = account.Balance.Sub(amount)
		updated, err := s.accountRepo.Update(ctx, id, account)
		if err != nil {
			return err
		}
		balance = updated.Balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	logger.Info("account service remove balance success", logger.Fields{
		"accountId": id,
		"amount":    amount.String(),
		"balance":   balance.String(),
	})
	return balance, nil
}

// VerifyAmountIntoBalance reports whether the balance covers the amount. It
// never mutates.
func (s *AccountService) VerifyAmountIntoBalance(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return amount.LessThanOrEqual(account.Balance), nil
}

func (s *AccountService) GetState(ctx context.Context, id string) (bool, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return account.State, nil
}

// ChangeState writes the whole entity back, so the read-modify-write runs
// under the balance lock to avoid clobbering a concurrent credit or debit.
func (s *AccountService) ChangeState(ctx context.Context, id string, state bool) error {
	return s.guard.WithBalanceLock(func() error {
		account, err := s.accountRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		account.State = state
		_, err = s.accountRepo.Update(ctx, id, account)
		return err
	})
}

func (s *AccountService) GetAccountType(ctx context.Context, id string) (domain.AccountType, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return domain.AccountType{}, err
	}
	return s.accountTypeRepo.GetByID(ctx, account.AccountTypeID)
}

func (s *AccountService) ChangeAccountType(ctx context.Context, id, accountTypeID string) (domain.AccountType, error) {
	accountType, err := s.accountTypeRepo.GetByID(ctx, accountTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.AccountType{}, fmt.Errorf("%w: account type does not exist", domain.ErrRecordNotFound)
		}
		return domain.AccountType{}, err
	}

	err = s.guard.WithBalanceLock(func() error {
		account, err := s.accountRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		account.AccountTypeID = accountType.ID
		_, err = s.accountRepo.Update(ctx, id, account)
		return err
	})
	if err != nil {
		return domain.AccountType{}, err
	}

	return accountType, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, id string, patch service_interfaces.UpdateAccountInput) (domain.Account, error) {
	logger.Info("account service update account request", logger.Fields{
		"accountId": id,
	})

	if patch.CustomerID != nil {
		if _, err := s.customerRepo.GetByID(ctx, *patch.CustomerID); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return domain.Account{}, fmt.Errorf("%w: customer does not exist", domain.ErrRecordNotFound)
			}
			return domain.Account{}, err
		}
	}
	if patch.AccountTypeID != nil {
		if _, err := s.accountTypeRepo.GetByID(ctx, *patch.AccountTypeID); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return domain.Account{}, fmt.Errorf("%w: account type does not exist", domain.ErrRecordNotFound)
			}
			return domain.Account{}, err
		}
	}
	if patch.Balance != nil && patch.Balance.IsNegative() {
		return domain.Account{}, fmt.Errorf("%w: balance cannot be negative", domain.ErrConflict)
	}

	// The merge and write run under the balance lock: the patch may set the
	// balance outright, and even a patch that does not must not write back a
	// stale balance over a concurrent credit or debit.
	var updated domain.Account
	err := s.guard.WithBalanceLock(func() error {
		current, err := s.accountRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.CustomerID != nil {
			current.CustomerID = *patch.CustomerID
		}
		if patch.AccountTypeID != nil {
			current.AccountTypeID = *patch.AccountTypeID
		}
		if patch.Balance != nil {
			current.Balance = *patch.Balance
		}
		if patch.State != nil {
			current.State = *patch.State
		}

		updated, err = s.accountRepo.Update(ctx, id, current)
		return err
	})
	if err != nil {
		return domain.Account{}, err
	}
	return updated, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	return s.guard.RemoveAccount(ctx, id, func() error {
		logger.Info("account service delete account", logger.Fields{"accountId": id})
		return s.accountRepo.Delete(ctx, id)
	})
}

func (s *AccountService) SoftDeleteAccount(ctx context.Context, id string) error {
	return s.guard.RemoveAccount(ctx, id, func() error {
		logger.Info("account service soft delete account", logger.Fields{"accountId": id})
		return s.accountRepo.SoftDelete(ctx, id)
	})
}

func (s *AccountService) FindAllAccounts(ctx context.Context, pagination commons.Pagination) ([]domain.Account, error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return commons.Paginate(accounts, pagination), nil
}

func (s *AccountService) FindAccountsByState(ctx context.Context, state bool) ([]domain.Account, error) {
	return s.accountRepo.GetByState(ctx, state)
}

func (s *AccountService) FindAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	return s.accountRepo.GetByCustomerID(ctx, customerID)
}

func (s *AccountService) FindAccountsByAccountType(ctx context.Context, accountTypeID string) ([]domain.Account, error) {
	return s.accountRepo.GetByAccountTypeID(ctx, accountTypeID)
}
