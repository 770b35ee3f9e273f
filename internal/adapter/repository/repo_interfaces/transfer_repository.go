package repo_interfaces

import (
	"context"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type TransferRepository interface {
	Create(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error)
	Update(ctx context.Context, id string, transfer domain.Transfer) (domain.Transfer, error)
	Delete(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.Transfer, error)
	GetAll(ctx context.Context) ([]domain.Transfer, error)
	GetOutcomeByDateRange(ctx context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error)
	GetIncomeByDateRange(ctx context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error)
}
