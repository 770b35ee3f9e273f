package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	Update(ctx context.Context, id string, account domain.Account) (domain.Account, error)
	Delete(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.Account, error)
	GetByIDIncludingDeleted(ctx context.Context, id string) (domain.Account, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	GetByState(ctx context.Context, state bool) ([]domain.Account, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error)
	GetByAccountTypeID(ctx context.Context, accountTypeID string) ([]domain.Account, error)
}

type AccountTypeRepository interface {
	Create(ctx context.Context, accountType domain.AccountType) (domain.AccountType, error)
	Update(ctx context.Context, id string, accountType domain.AccountType) (domain.AccountType, error)
	Delete(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.AccountType, error)
	GetAll(ctx context.Context) ([]domain.AccountType, error)
	GetByState(ctx context.Context, state bool) ([]domain.AccountType, error)
	GetByName(ctx context.Context, name string) ([]domain.AccountType, error)
}
