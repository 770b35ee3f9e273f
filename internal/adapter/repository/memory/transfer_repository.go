package memory

import (
	"context"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type TransferRepository struct {
	store *Store[domain.Transfer, *domain.Transfer]
}

func NewTransferRepository(notifier Notifier) *TransferRepository {
	return &TransferRepository{store: NewStore[domain.Transfer]("transfer", notifier)}
}

func (r *TransferRepository) Create(_ context.Context, transfer domain.Transfer) (domain.Transfer, error) {
	return r.store.Add(transfer), nil
}

func (r *TransferRepository) Update(_ context.Context, id string, transfer domain.Transfer) (domain.Transfer, error) {
	transfer.ID = id
	return r.store.Replace(id, transfer)
}

func (r *TransferRepository) Delete(_ context.Context, id string) error {
	return r.store.Remove(id)
}

func (r *TransferRepository) SoftDelete(_ context.Context, id string) error {
	return r.store.RemoveSoft(id)
}

func (r *TransferRepository) GetByID(_ context.Context, id string) (domain.Transfer, error) {
	return r.store.FindByID(id)
}

func (r *TransferRepository) GetAll(_ context.Context) ([]domain.Transfer, error) {
	return r.store.All(), nil
}

// GetOutcomeByDateRange returns live transfers debited from the account, with
// both bounds inclusive.
func (r *TransferRepository) GetOutcomeByDateRange(_ context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error) {
	return r.store.Filter(func(t domain.Transfer) bool {
		return t.OutcomeAccountID == accountID && withinRange(t.DateTime, start, end)
	}), nil
}

// GetIncomeByDateRange returns live transfers credited to the account, with
// both bounds inclusive.
func (r *TransferRepository) GetIncomeByDateRange(_ context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error) {
	return r.store.Filter(func(t domain.Transfer) bool {
		return t.IncomeAccountID == accountID && withinRange(t.DateTime, start, end)
	}), nil
}

func withinRange(at, start, end time.Time) bool {
	return !at.Before(start) && !at.After(end)
}
