package memory

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type AccountTypeRepository struct {
	store *Store[domain.AccountType, *domain.AccountType]
}

func NewAccountTypeRepository(notifier Notifier) *AccountTypeRepository {
	return &AccountTypeRepository{store: NewStore[domain.AccountType]("account_type", notifier)}
}

func (r *AccountTypeRepository) Create(_ context.Context, accountType domain.AccountType) (domain.AccountType, error) {
	return r.store.Add(accountType), nil
}

func (r *AccountTypeRepository) Update(_ context.Context, id string, accountType domain.AccountType) (domain.AccountType, error) {
	accountType.ID = id
	return r.store.Replace(id, accountType)
}

func (r *AccountTypeRepository) Delete(_ context.Context, id string) error {
	return r.store.Remove(id)
}

func (r *AccountTypeRepository) SoftDelete(_ context.Context, id string) error {
	return r.store.RemoveSoft(id)
}

func (r *AccountTypeRepository) GetByID(_ context.Context, id string) (domain.AccountType, error) {
	return r.store.FindByID(id)
}

func (r *AccountTypeRepository) GetAll(_ context.Context) ([]domain.AccountType, error) {
	return r.store.All(), nil
}

func (r *AccountTypeRepository) GetByState(_ context.Context, state bool) ([]domain.AccountType, error) {
	return r.store.Filter(func(a domain.AccountType) bool { return a.State == state }), nil
}

func (r *AccountTypeRepository) GetByName(_ context.Context, name string) ([]domain.AccountType, error) {
	return r.store.Filter(func(a domain.AccountType) bool { return a.Name == name }), nil
}
