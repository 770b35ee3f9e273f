package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

func TestSignUpCreatesCustomerAndAccount(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	accountType := f.createAccountType(t, "savings")

	token, err := f.security.SignUp(context.Background(), service_interfaces.SignUpInput{
		DocumentTypeID: documentType.ID,
		Document:       "10000001",
		FullName:       "Jane Roe",
		Email:          "jane@example.com",
		Phone:          "+15550001",
		Password:       "secret123",
		AccountTypeID:  accountType.ID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := f.security.VerifyToken(token)
	require.NoError(t, err)

	customer, err := f.customers.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, claims["sub"])

	accounts, err := f.accounts.FindAccountsByCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, accounts[0].ID, claims["accountId"])
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")

	token, err := f.security.SignIn(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = f.security.SignIn(context.Background(), "jane@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.security.SignIn(context.Background(), "nobody@example.com", "secret123")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyTokenRejectsTamperedToken(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")

	token, err := f.security.SignIn(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = f.security.VerifyToken(tampered)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.security.VerifyToken("not-a-jwt")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSignOutValidatesTheToken(t *testing.T) {
	f := newFixture(t)
	documentType := f.createDocumentType(t, "passport")
	f.createCustomer(t, documentType.ID, "10000001", "jane@example.com", "+15550001")

	token, err := f.security.SignIn(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, f.security.SignOut(context.Background(), token))
	require.ErrorIs(t, f.security.SignOut(context.Background(), "garbage"), domain.ErrUnauthorized)
}
