package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/bank-back-office/internal/adapter/repository/memory"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/notifier"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
	"github.com/api-sage/bank-back-office/internal/usecase/services"
)

// fixture wires the full service graph on in-memory repositories.
type fixture struct {
	customers *services.CustomerService
	accounts  *services.AccountService
	transfers *services.TransferService
	security  *services.SecurityService
	events    *notifier.ChangeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	events := notifier.New(16)
	customerRepo := memory.NewCustomerRepository(events)
	documentTypeRepo := memory.NewDocumentTypeRepository(events)
	accountRepo := memory.NewAccountRepository(events)
	accountTypeRepo := memory.NewAccountTypeRepository(events)
	transferRepo := memory.NewTransferRepository(events)

	guard := services.NewDeletionGuard(accountRepo)
	customers := services.NewCustomerService(customerRepo, documentTypeRepo, guard)
	accounts := services.NewAccountService(accountRepo, accountTypeRepo, customerRepo, guard)
	transfers := services.NewTransferService(transferRepo, accountRepo, guard)
	security := services.NewSecurityService(customers, accounts, "test-signing-key", time.Hour)

	return &fixture{
		customers: customers,
		accounts:  accounts,
		transfers: transfers,
		security:  security,
		events:    events,
	}
}

func (f *fixture) createDocumentType(t *testing.T, name string) domain.DocumentType {
	t.Helper()
	documentType, err := f.customers.CreateDocumentType(context.Background(), service_interfaces.DocumentTypeInput{Name: name})
	require.NoError(t, err)
	return documentType
}

func (f *fixture) createAccountType(t *testing.T, name string) domain.AccountType {
	t.Helper()
	accountType, err := f.accounts.CreateAccountType(context.Background(), service_interfaces.AccountTypeInput{Name: name})
	require.NoError(t, err)
	return accountType
}

func (f *fixture) createCustomer(t *testing.T, documentTypeID, document, email, phone string) domain.Customer {
	t.Helper()
	customer, err := f.customers.CreateCustomer(context.Background(), service_interfaces.CreateCustomerInput{
		FullName:       "Jane Roe",
		Document:       document,
		DocumentTypeID: documentTypeID,
		Email:          email,
		Password:       "secret123",
		Phone:          phone,
	})
	require.NoError(t, err)
	return customer
}

func (f *fixture) createAccount(t *testing.T, customerID, accountTypeID string) domain.Account {
	t.Helper()
	account, err := f.accounts.CreateAccount(context.Background(), customerID, accountTypeID)
	require.NoError(t, err)
	return account
}

func (f *fixture) fundAccount(t *testing.T, accountID string, amount string) {
	t.Helper()
	_, err := f.accounts.AddBalance(context.Background(), accountID, decimal.RequireFromString(amount))
	require.NoError(t, err)
}

// seed creates a document type, an account type, one customer and one funded
// account, which most scenarios need as a baseline.
func (f *fixture) seed(t *testing.T) (domain.Customer, domain.Account) {
	t.Helper()
	documentType := f.createDocumentType(t, "passport")
	accountType := f.createAccountType(t, "savings")
	customer := f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")
	account := f.createAccount(t, customer.ID, accountType.ID)
	return customer, account
}
