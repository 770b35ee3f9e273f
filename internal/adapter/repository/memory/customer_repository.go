package memory

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type CustomerRepository struct {
	store *Store[domain.Customer, *domain.Customer]
}

func NewCustomerRepository(notifier Notifier) *CustomerRepository {
	return &CustomerRepository{store: NewStore[domain.Customer]("customer", notifier)}
}

func (r *CustomerRepository) Create(_ context.Context, customer domain.Customer) (domain.Customer, error) {
	return r.store.Add(customer), nil
}

func (r *CustomerRepository) Update(_ context.Context, id string, customer domain.Customer) (domain.Customer, error) {
	customer.ID = id
	return r.store.Replace(id, customer)
}

func (r *CustomerRepository) Delete(_ context.Context, id string) error {
	return r.store.Remove(id)
}

func (r *CustomerRepository) SoftDelete(_ context.Context, id string) error {
	return r.store.RemoveSoft(id)
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (domain.Customer, error) {
	return r.store.FindByID(id)
}

func (r *CustomerRepository) GetByIDIncludingDeleted(_ context.Context, id string) (domain.Customer, error) {
	return r.store.FindByIDIncludingDeleted(id)
}

func (r *CustomerRepository) GetAll(_ context.Context) ([]domain.Customer, error) {
	return r.store.All(), nil
}

func (r *CustomerRepository) GetByEmail(_ context.Context, email string) (domain.Customer, error) {
	return r.store.FindFirst(func(c domain.Customer) bool { return c.Email == email })
}

func (r *CustomerRepository) GetByPhone(_ context.Context, phone string) (domain.Customer, error) {
	return r.store.FindFirst(func(c domain.Customer) bool { return c.Phone == phone })
}

func (r *CustomerRepository) GetByDocument(_ context.Context, documentTypeID, document string) (domain.Customer, error) {
	return r.store.FindFirst(func(c domain.Customer) bool {
		return c.DocumentTypeID == documentTypeID && c.Document == document
	})
}

func (r *CustomerRepository) GetByState(_ context.Context, state bool) ([]domain.Customer, error) {
	return r.store.Filter(func(c domain.Customer) bool { return c.State == state }), nil
}

func (r *CustomerRepository) GetByFullName(_ context.Context, fullName string) ([]domain.Customer, error) {
	return r.store.Filter(func(c domain.Customer) bool { return c.FullName == fullName }), nil
}
