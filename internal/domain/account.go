package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType struct {
	ID        string
	Name      string
	State     bool
	DeletedAt *time.Time
}

func (a *AccountType) EntityID() string         { return a.ID }
func (a *AccountType) SoftDeleted() bool        { return a.DeletedAt != nil }
func (a *AccountType) MarkDeleted(at time.Time) { a.DeletedAt = &at }

type Account struct {
	ID            string
	CustomerID    string
	AccountTypeID string
	Balance       decimal.Decimal
	State         bool
	CreatedAt     time.Time
	DeletedAt     *time.Time
}

func (a *Account) EntityID() string         { return a.ID }
func (a *Account) SoftDeleted() bool        { return a.DeletedAt != nil }
func (a *Account) MarkDeleted(at time.Time) { a.DeletedAt = &at }
