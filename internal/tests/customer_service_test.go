package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

func TestCreateCustomerRejectsUnknownDocumentType(t *testing.T) {
	f := newFixture(t)

	_, err := f.customers.CreateCustomer(context.Background(), service_interfaces.CreateCustomerInput{
		FullName:       "Jane Roe",
		Document:       "10000001",
		DocumentTypeID: "missing",
		Email:          "jane@example.com",
		Password:       "secret123",
		Phone:          "+15550001",
	})
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestCreateCustomerUniquenessConflictsNameTheField(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")

	cases := []struct {
		name     string
		document string
		email    string
		phone    string
		want     string
	}{
		{"duplicate document", "10000001", "other@example.com", "+15550002", "document"},
		{"duplicate email", "10000002", "jane@example.com", "+15550002", "email"},
		{"duplicate phone", "10000002", "other@example.com", "+15550001", "phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.customers.CreateCustomer(context.Background(), service_interfaces.CreateCustomerInput{
				FullName:       "John Doe",
				Document:       tc.document,
				DocumentTypeID: documentType.ID,
				Email:          tc.email,
				Password:       "secret123",
				Phone:          tc.phone,
			})
			require.ErrorIs(t, err, domain.ErrConflict)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestUpdateCustomerDoesNotConflictWithItself(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	customer := f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")

	// Re-submitting the customer's own email must not trip the uniqueness scan.
	email := customer.Email
	name := "Jane Q. Roe"
	updated, err := f.customers.UpdateCustomer(context.Background(), customer.ID, service_interfaces.UpdateCustomerInput{
		FullName: &name,
		Email:    &email,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Roe", updated.FullName)
	assert.Equal(t, customer.Email, updated.Email)
}

func TestUpdateCustomerRejectsAnotherCustomersEmail(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")
	other := f.createCustomer(t, documentType.ID, "10000002", "john@example.com", "+15550002")

	taken := "jane@example.com"
	_, err := f.customers.UpdateCustomer(context.Background(), other.ID, service_interfaces.UpdateCustomerInput{
		Email: &taken,
	})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestUnsubscribeReportsTrueOnlyOnce(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	customer := f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")

	changed, err := f.customers.Unsubscribe(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = f.customers.Unsubscribe(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := f.customers.GetCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.False(t, got.State)
}

func TestSoftDeletedCustomerOnlyVisibleToAuditRead(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	customer := f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")

	require.NoError(t, f.customers.SoftDeleteCustomer(context.Background(), customer.ID))

	_, err := f.customers.GetCustomer(context.Background(), customer.ID)
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	got, err := f.customers.GetCustomerIncludingDeleted(context.Background(), customer.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DeletedAt)

	all, err := f.customers.FindAllCustomers(context.Background(), commons.Pagination{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSoftDeleteCustomerEmitsChangeEvent(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	customer := f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")

	require.NoError(t, f.customers.SoftDeleteCustomer(context.Background(), customer.ID))

	select {
	case event := <-f.events.Events():
		assert.Equal(t, "customer", event.Kind)
	default:
		t.Fatal("expected a change event after soft delete")
	}
}

func TestDeleteCustomerBlockedWhileAccountHoldsBalance(t *testing.T) {
	f := newFixture(t)
	customer, account := f.seed(t)
	f.fundAccount(t, account.ID, "25.50")

	err := f.customers.DeleteCustomer(context.Background(), customer.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	err = f.customers.SoftDeleteCustomer(context.Background(), customer.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	// Draining the account lifts the guard.
	_, err = f.accounts.RemoveBalance(context.Background(), account.ID, decimal.RequireFromString("25.50"))
	require.NoError(t, err)
	require.NoError(t, f.customers.DeleteCustomer(context.Background(), customer.ID))
}

func TestUnsubscribeDoesNotClobberConcurrentUpdate(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	customer := f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")

	done := make(chan error, 2)
	go func() {
		email := "jane.new@example.com"
		_, err := f.customers.UpdateCustomer(context.Background(), customer.ID, service_interfaces.UpdateCustomerInput{
			Email: &email,
		})
		done <- err
	}()
	go func() {
		for i := 0; i < 200; i++ {
			if _, err := f.customers.Unsubscribe(context.Background(), customer.ID); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	for i := 0; i < 2; i++ {
		require.NoError(t, <-done)
	}

	// An unsubscribe interleaving with the update must not write the old
	// email back over the new one.
	got, err := f.customers.GetCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane.new@example.com", got.Email)
	assert.False(t, got.State)
}

func TestFindByEmailAndPassword(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")

	match, err := f.customers.FindByEmailAndPassword(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = f.customers.FindByEmailAndPassword(context.Background(), "jane@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, match)

	match, err = f.customers.FindByEmailAndPassword(context.Background(), "nobody@example.com", "secret123")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestDocumentTypeNameMustBeUniqueAmongLive(t *testing.T) {
	f := newFixture(t)
	f.createDocumentType(t, "passport")

	_, err := f.customers.CreateDocumentType(context.Background(), service_interfaces.DocumentTypeInput{Name: "passport"})
	require.ErrorIs(t, err, domain.ErrConflict)

	// Soft deleting the original frees the name.
	types, err := f.customers.FindDocumentTypesByName(context.Background(), "passport")
	require.NoError(t, err)
	require.Len(t, types, 1)
	require.NoError(t, f.customers.DeleteDocumentType(context.Background(), types[0].ID, true))

	_, err = f.customers.CreateDocumentType(context.Background(), service_interfaces.DocumentTypeInput{Name: "passport"})
	require.NoError(t, err)
}

func TestFindAllCustomersPagination(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	f.createCustomer(t, documentType.ID, "10000001", "a@example.com", "+15550001")
	f.createCustomer(t, documentType.ID, "10000002", "b@example.com", "+15550002")
	f.createCustomer(t, documentType.ID, "10000003", "c@example.com", "+15550003")

	page, err := f.customers.FindAllCustomers(context.Background(), commons.Pagination{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b@example.com", page[0].Email)

	page, err = f.customers.FindAllCustomers(context.Background(), commons.Pagination{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, page)
}
