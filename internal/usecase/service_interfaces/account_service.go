package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/shopspring/decimal"
)

// UpdateAccountInput is a patch: nil fields are left untouched.
type UpdateAccountInput struct {
	CustomerID    *string
	AccountTypeID *string
	Balance       *decimal.Decimal
	State         *bool
}

type AccountTypeInput struct {
	Name  string
	State *bool
}

type UpdateAccountTypeInput struct {
	Name  *string
	State *bool
}

type AccountService interface {
	CreateAccount(ctx context.Context, customerID, accountTypeID string) (domain.Account, error)
	GetAccount(ctx context.Context, id string) (domain.Account, error)
	GetAccountIncludingDeleted(ctx context.Context, id string) (domain.Account, error)
	GetBalance(ctx context.Context, id string) (decimal.Decimal, error)
	AddBalance(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error)
	RemoveBalance(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error)
	VerifyAmountIntoBalance(ctx context.Context, id string, amount decimal.Decimal) (bool, error)
	GetState(ctx context.Context, id string) (bool, error)
	ChangeState(ctx context.Context, id string, state bool) error
	GetAccountType(ctx context.Context, id string) (domain.AccountType, error)
	ChangeAccountType(ctx context.Context, id, accountTypeID string) (domain.AccountType, error)
	UpdateAccount(ctx context.Context, id string, patch UpdateAccountInput) (domain.Account, error)
	DeleteAccount(ctx context.Context, id string) error
	SoftDeleteAccount(ctx context.Context, id string) error
	FindAllAccounts(ctx context.Context, pagination commons.Pagination) ([]domain.Account, error)
	FindAccountsByState(ctx context.Context, state bool) ([]domain.Account, error)
	FindAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error)
	FindAccountsByAccountType(ctx context.Context, accountTypeID string) ([]domain.Account, error)

	CreateAccountType(ctx context.Context, input AccountTypeInput) (domain.AccountType, error)
	UpdateAccountType(ctx context.Context, id string, patch UpdateAccountTypeInput) (domain.AccountType, error)
	DeleteAccountType(ctx context.Context, id string, soft bool) error
	GetAccountTypeByID(ctx context.Context, id string) (domain.AccountType, error)
	FindAllAccountTypes(ctx context.Context, pagination commons.Pagination) ([]domain.AccountType, error)
	FindAccountTypesByState(ctx context.Context, state bool) ([]domain.AccountType, error)
	FindAccountTypesByName(ctx context.Context, name string) ([]domain.AccountType, error)
}
