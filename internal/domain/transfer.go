package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transfer struct {
	ID               string
	OutcomeAccountID string
	IncomeAccountID  string
	Amount           decimal.Decimal
	Reason           string
	DateTime         time.Time
	DeletedAt        *time.Time
}

func (t *Transfer) EntityID() string         { return t.ID }
func (t *Transfer) SoftDeleted() bool        { return t.DeletedAt != nil }
func (t *Transfer) MarkDeleted(at time.Time) { t.DeletedAt = &at }
