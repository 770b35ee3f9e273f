package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

func TestCreateAccountStartsAtZeroBalance(t *testing.T) {
	f := newFixture(t)
	_, account := f.seed(t)

	assert.True(t, account.Balance.IsZero())
	assert.True(t, account.State)
}

func TestCreateAccountRequiresExistingReferences(t *testing.T) {
	f := newFixture(t)
	customer, _ := f.seed(t)

	_, err := f.accounts.CreateAccount(context.Background(), "missing", "missing")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "customer")

	_, err = f.accounts.CreateAccount(context.Background(), customer.ID, "missing")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "account type")
}

func TestAddAndRemoveBalance(t *testing.T) {
	f := newFixture(t)
	_, account := f.seed(t)

	balance, err := f.accounts.AddBalance(context.Background(), account.ID, decimal.RequireFromString("100.25"))
	require.NoError(t, err)
	assert.Equal(t, "100.25", balance.String())

	balance, err = f.accounts.RemoveBalance(context.Background(), account.ID, decimal.RequireFromString("0.25"))
	require.NoError(t, err)
	assert.Equal(t, "100", balance.String())
}

func TestBalanceAdjustmentsRejectNonPositiveAmounts(t *testing.T) {
	f := newFixture(t)
	_, account := f.seed(t)

	_, err := f.accounts.AddBalance(context.Background(), account.ID, decimal.Zero)
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.accounts.RemoveBalance(context.Background(), account.ID, decimal.RequireFromString("-1"))
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestRemoveBalanceNeverOverdraws(t *testing.T) {
	f := newFixture(t)
	_, account := f.seed(t)
	f.fundAccount(t, account.ID, "10")

	_, err := f.accounts.RemoveBalance(context.Background(), account.ID, decimal.RequireFromString("10.01"))
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// The failed debit must leave the balance untouched.
	balance, err := f.accounts.GetBalance(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "10", balance.String())
}

func TestVerifyAmountIntoBalance(t *testing.T) {
	f := newFixture(t)
	_, account := f.seed(t)
	f.fundAccount(t, account.ID, "50")

	covered, err := f.accounts.VerifyAmountIntoBalance(context.Background(), account.ID, decimal.RequireFromString("50"))
	require.NoError(t, err)
	assert.True(t, covered)

	covered, err = f.accounts.VerifyAmountIntoBalance(context.Background(), account.ID, decimal.RequireFromString("50.01"))
	require.NoError(t, err)
	assert.False(t, covered)
}

func TestDeleteAccountBlockedWhileBalanceRemains(t *testing.T) {
	f := newFixture(t)
	_, account := f.seed(t)
	f.fundAccount(t, account.ID, "5")

	err := f.accounts.DeleteAccount(context.Background(), account.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	err = f.accounts.SoftDeleteAccount(context.Background(), account.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.accounts.RemoveBalance(context.Background(), account.ID, decimal.RequireFromString("5"))
	require.NoError(t, err)
	require.NoError(t, f.accounts.SoftDeleteAccount(context.Background(), account.ID))

	_, err = f.accounts.GetAccount(context.Background(), account.ID)
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	audit, err := f.accounts.GetAccountIncludingDeleted(context.Background(), account.ID)
	require.NoError(t, err)
	assert.NotNil(t, audit.DeletedAt)
}

func TestChangeAccountType(t *testing.T) {
	f := newFixture(t)
	_, account := f.seed(t)
	checking := f.createAccountType(t, "checking")

	accountType, err := f.accounts.ChangeAccountType(context.Background(), account.ID, checking.ID)
	require.NoError(t, err)
	assert.Equal(t, checking.ID, accountType.ID)

	got, err := f.accounts.GetAccountType(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "checking", got.Name)

	_, err = f.accounts.ChangeAccountType(context.Background(), account.ID, "missing")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestUpdateAccountRejectsNegativeBalance(t *testing.T) {
	f := newFixture(t)
	_, account := f.seed(t)

	negative := decimal.RequireFromString("-1")
	_, err := f.accounts.UpdateAccount(context.Background(), account.ID, service_interfaces.UpdateAccountInput{
		Balance: &negative,
	})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestChangeStateDoesNotLoseConcurrentCredits(t *testing.T) {
	f := newFixture(t)
	_, account := f.seed(t)

	const credits = 500
	one := decimal.NewFromInt(1)
	done := make(chan error, 2)

	go func() {
		for i := 0; i < credits; i++ {
			if _, err := f.accounts.AddBalance(context.Background(), account.ID, one); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()
	go func() {
		for i := 0; i < credits; i++ {
			if err := f.accounts.ChangeState(context.Background(), account.ID, i%2 == 0); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	for i := 0; i < 2; i++ {
		require.NoError(t, <-done)
	}

	// A state write interleaving with the credits must not put back a stale
	// balance; every single credit has to survive.
	balance, err := f.accounts.GetBalance(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "500", balance.String())
}

func TestUpdateAccountDoesNotLoseConcurrentCredits(t *testing.T) {
	f := newFixture(t)
	_, account := f.seed(t)

	const credits = 200
	one := decimal.NewFromInt(1)
	done := make(chan error, 2)

	go func() {
		for i := 0; i < credits; i++ {
			if _, err := f.accounts.AddBalance(context.Background(), account.ID, one); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()
	go func() {
		for i := 0; i < credits; i++ {
			state := i%2 == 0
			if _, err := f.accounts.UpdateAccount(context.Background(), account.ID, service_interfaces.UpdateAccountInput{
				State: &state,
			}); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	for i := 0; i < 2; i++ {
		require.NoError(t, <-done)
	}

	balance, err := f.accounts.GetBalance(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "200", balance.String())
}

func TestFindAccountsByCustomer(t *testing.T) {
	f := newFixture(t)
	customer, account := f.seed(t)
	accountType := f.createAccountType(t, "checking")
	second := f.createAccount(t, customer.ID, accountType.ID)

	accounts, err := f.accounts.FindAccountsByCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, account.ID, accounts[0].ID)
	assert.Equal(t, second.ID, accounts[1].ID)
}
