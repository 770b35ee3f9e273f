package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

func (f *fixture) secondAccount(t *testing.T) domain.Account {
	t.Helper()
	documentType := f.createDocumentType(t, "national id")
	customer := f.createCustomer(t, documentType.ID, "20000001", "john@example.com", "+15550099")
	accountType := f.createAccountType(t, "checking")
	return f.createAccount(t, customer.ID, accountType.ID)
}

func TestRegisterTransferDoesNotMoveMoney(t *testing.T) {
	f := newFixture(t)
	_, outcome := f.seed(t)
	income := f.secondAccount(t)
	f.fundAccount(t, outcome.ID, "100")

	transfer, err := f.transfers.RegisterTransfer(context.Background(), service_interfaces.RegisterTransferInput{
		OutcomeAccountID: outcome.ID,
		IncomeAccountID:  income.ID,
		Amount:           decimal.RequireFromString("40"),
		Reason:           "ledger import",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, transfer.ID)

	balance, err := f.accounts.GetBalance(context.Background(), outcome.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", balance.String())

	balance, err = f.accounts.GetBalance(context.Background(), income.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestPerformTransferMovesMoneyAndRecords(t *testing.T) {
	f := newFixture(t)
	_, outcome := f.seed(t)
	income := f.secondAccount(t)
	f.fundAccount(t, outcome.ID, "100")

	transfer, err := f.transfers.PerformTransfer(context.Background(), service_interfaces.RegisterTransferInput{
		OutcomeAccountID: outcome.ID,
		IncomeAccountID:  income.ID,
		Amount:           decimal.RequireFromString("40"),
		Reason:           "rent",
	})
	require.NoError(t, err)

	balance, err := f.accounts.GetBalance(context.Background(), outcome.ID)
	require.NoError(t, err)
	assert.Equal(t, "60", balance.String())

	balance, err = f.accounts.GetBalance(context.Background(), income.ID)
	require.NoError(t, err)
	assert.Equal(t, "40", balance.String())

	got, err := f.transfers.GetTransfer(context.Background(), transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, "rent", got.Reason)
}

func TestPerformTransferInsufficientBalanceLeavesAccountsUntouched(t *testing.T) {
	f := newFixture(t)
	_, outcome := f.seed(t)
	income := f.secondAccount(t)
	f.fundAccount(t, outcome.ID, "10")

	_, err := f.transfers.PerformTransfer(context.Background(), service_interfaces.RegisterTransferInput{
		OutcomeAccountID: outcome.ID,
		IncomeAccountID:  income.ID,
		Amount:           decimal.RequireFromString("10.01"),
		Reason:           "too much",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	balance, err := f.accounts.GetBalance(context.Background(), outcome.ID)
	require.NoError(t, err)
	assert.Equal(t, "10", balance.String())

	balance, err = f.accounts.GetBalance(context.Background(), income.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	transfers, err := f.transfers.FindAllTransfers(context.Background(), commons.Pagination{})
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestTransferRejectsSameAccountAndBadAmount(t *testing.T) {
	f := newFixture(t)
	_, outcome := f.seed(t)

	_, err := f.transfers.RegisterTransfer(context.Background(), service_interfaces.RegisterTransferInput{
		OutcomeAccountID: outcome.ID,
		IncomeAccountID:  outcome.ID,
		Amount:           decimal.RequireFromString("1"),
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	income := f.secondAccount(t)
	_, err = f.transfers.RegisterTransfer(context.Background(), service_interfaces.RegisterTransferInput{
		OutcomeAccountID: outcome.ID,
		IncomeAccountID:  income.ID,
		Amount:           decimal.Zero,
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.transfers.RegisterTransfer(context.Background(), service_interfaces.RegisterTransferInput{
		OutcomeAccountID: "missing",
		IncomeAccountID:  income.ID,
		Amount:           decimal.RequireFromString("1"),
	})
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "outcome account")
}

func TestTransferDateRangeFinders(t *testing.T) {
	f := newFixture(t)
	_, outcome := f.seed(t)
	income := f.secondAccount(t)
	f.fundAccount(t, outcome.ID, "100")

	before := time.Now().UTC().Add(-time.Minute)
	_, err := f.transfers.PerformTransfer(context.Background(), service_interfaces.RegisterTransferInput{
		OutcomeAccountID: outcome.ID,
		IncomeAccountID:  income.ID,
		Amount:           decimal.RequireFromString("5"),
		Reason:           "first",
	})
	require.NoError(t, err)
	after := time.Now().UTC().Add(time.Minute)

	outgoing, err := f.transfers.FindOutcomeByDateRange(context.Background(), outcome.ID, before, after)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, "first", outgoing[0].Reason)

	incoming, err := f.transfers.FindIncomeByDateRange(context.Background(), income.ID, before, after)
	require.NoError(t, err)
	require.Len(t, incoming, 1)

	// A window that ends before the transfer finds nothing.
	empty, err := f.transfers.FindOutcomeByDateRange(context.Background(), outcome.ID, before.Add(-time.Hour), before)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateTransferValidatesPatch(t *testing.T) {
	f := newFixture(t)
	_, outcome := f.seed(t)
	income := f.secondAccount(t)
	f.fundAccount(t, outcome.ID, "100")

	transfer, err := f.transfers.PerformTransfer(context.Background(), service_interfaces.RegisterTransferInput{
		OutcomeAccountID: outcome.ID,
		IncomeAccountID:  income.ID,
		Amount:           decimal.RequireFromString("5"),
		Reason:           "original",
	})
	require.NoError(t, err)

	// Patching income to equal outcome is rejected.
	_, err = f.transfers.UpdateTransfer(context.Background(), transfer.ID, service_interfaces.UpdateTransferInput{
		IncomeAccountID: &outcome.ID,
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	reason := "corrected"
	updated, err := f.transfers.UpdateTransfer(context.Background(), transfer.ID, service_interfaces.UpdateTransferInput{
		Reason: &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, "corrected", updated.Reason)
}

func TestSoftDeletedTransferLeavesLedgerView(t *testing.T) {
	f := newFixture(t)
	_, outcome := f.seed(t)
	income := f.secondAccount(t)
	f.fundAccount(t, outcome.ID, "100")

	transfer, err := f.transfers.PerformTransfer(context.Background(), service_interfaces.RegisterTransferInput{
		OutcomeAccountID: outcome.ID,
		IncomeAccountID:  income.ID,
		Amount:           decimal.RequireFromString("5"),
	})
	require.NoError(t, err)

	require.NoError(t, f.transfers.DeleteTransfer(context.Background(), transfer.ID, true))

	_, err = f.transfers.GetTransfer(context.Background(), transfer.ID)
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	transfers, err := f.transfers.FindAllTransfers(context.Background(), commons.Pagination{})
	require.NoError(t, err)
	assert.Empty(t, transfers)
}
