package service_interfaces

import (
	"context"
	"time"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/shopspring/decimal"
)

type RegisterTransferInput struct {
	OutcomeAccountID string
	IncomeAccountID  string
	Amount           decimal.Decimal
	Reason           string
}

// UpdateTransferInput is a patch: nil fields are left untouched.
type UpdateTransferInput struct {
	OutcomeAccountID *string
	IncomeAccountID  *string
	Amount           *decimal.Decimal
	Reason           *string
	DateTime         *time.Time
}

type TransferService interface {
	// RegisterTransfer records the fact of a transfer without moving money;
	// balance adjustments are the caller's responsibility.
	RegisterTransfer(ctx context.Context, input RegisterTransferInput) (domain.Transfer, error)
	// PerformTransfer debits the outcome account, credits the income account
	// and records the transfer in one critical section.
	PerformTransfer(ctx context.Context, input RegisterTransferInput) (domain.Transfer, error)
	UpdateTransfer(ctx context.Context, id string, patch UpdateTransferInput) (domain.Transfer, error)
	DeleteTransfer(ctx context.Context, id string, soft bool) error
	GetTransfer(ctx context.Context, id string) (domain.Transfer, error)
	FindAllTransfers(ctx context.Context, pagination commons.Pagination) ([]domain.Transfer, error)
	FindOutcomeByDateRange(ctx context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error)
	FindIncomeByDateRange(ctx context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error)
}
