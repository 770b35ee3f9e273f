package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/bank-back-office/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/shopspring/decimal"
)

// DeletionGuard blocks removal of a customer or account while positive
// balance is outstanding. Its mutex is also the critical section for every
// balance mutation, so a guard check and the removal that follows cannot
// interleave with a concurrent credit or debit.
type DeletionGuard struct {
	mu          sync.Mutex
	accountRepo repo_interfaces.AccountRepository
}

func NewDeletionGuard(accountRepo repo_interfaces.AccountRepository) *DeletionGuard {
	return &DeletionGuard{accountRepo: accountRepo}
}

// WithBalanceLock runs fn while holding the balance lock. Every code path
// that changes an account balance must go through here.
func (g *DeletionGuard) WithBalanceLock(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}

// RemoveCustomer runs remove only if none of the customer's accounts holds a
// positive balance. Check and removal happen under the balance lock.
func (g *DeletionGuard) RemoveCustomer(ctx context.Context, customerID string, remove func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	accounts, err := g.accountRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if account.Balance.GreaterThan(decimal.Zero) {
			return fmt.Errorf("%w: the customer has at least one account with balance", domain.ErrConflict)
		}
	}

	return remove()
}

// RemoveAccount runs remove only if the account's own balance is zero.
func (g *DeletionGuard) RemoveAccount(ctx context.Context, accountID string, remove func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	account, err := g.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.Balance.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: the account still has balance", domain.ErrConflict)
	}

	return remove()
}
