package memory

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type AccountRepository struct {
	store *Store[domain.Account, *domain.Account]
}

func NewAccountRepository(notifier Notifier) *AccountRepository {
	return &AccountRepository{store: NewStore[domain.Account]("account", notifier)}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	return r.store.Add(account), nil
}

func (r *AccountRepository) Update(_ context.Context, id string, account domain.Account) (domain.Account, error) {
	account.ID = id
	return r.store.Replace(id, account)
}

func (r *AccountRepository) Delete(_ context.Context, id string) error {
	return r.store.Remove(id)
}

func (r *AccountRepository) SoftDelete(_ context.Context, id string) error {
	return r.store.RemoveSoft(id)
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (domain.Account, error) {
	return r.store.FindByID(id)
}

func (r *AccountRepository) GetByIDIncludingDeleted(_ context.Context, id string) (domain.Account, error) {
	return r.store.FindByIDIncludingDeleted(id)
}

func (r *AccountRepository) GetAll(_ context.Context) ([]domain.Account, error) {
	return r.store.All(), nil
}

func (r *AccountRepository) GetByState(_ context.Context, state bool) ([]domain.Account, error) {
	return r.store.Filter(func(a domain.Account) bool { return a.State == state }), nil
}

func (r *AccountRepository) GetByCustomerID(_ context.Context, customerID string) ([]domain.Account, error) {
	return r.store.Filter(func(a domain.Account) bool { return a.CustomerID == customerID }), nil
}

func (r *AccountRepository) GetByAccountTypeID(_ context.Context, accountTypeID string) ([]domain.Account, error) {
	return r.store.Filter(func(a domain.Account) bool { return a.AccountTypeID == accountTypeID }), nil
}
