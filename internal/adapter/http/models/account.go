package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type CreateAccountRequest struct {
	CustomerID    string `json:"customerId"`
	AccountTypeID string `json:"accountTypeId"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CustomerID) == "" {
		errs = append(errs, "customerId is required")
	}
	if strings.TrimSpace(r.AccountTypeID) == "" {
		errs = append(errs, "accountTypeId is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type UpdateAccountRequest struct {
	CustomerID    *string `json:"customerId,omitempty"`
	AccountTypeID *string `json:"accountTypeId,omitempty"`
	Balance       *string `json:"balance,omitempty"`
	State         *bool   `json:"state,omitempty"`
}

// ParseBalance validates and converts the optional balance field.
func (r UpdateAccountRequest) ParseBalance() (*decimal.Decimal, error) {
	if r.Balance == nil {
		return nil, nil
	}
	parsed, err := decimal.NewFromString(strings.TrimSpace(*r.Balance))
	if err != nil {
		return nil, errors.New("balance must be a decimal number")
	}
	if parsed.IsNegative() {
		return nil, errors.New("balance cannot be negative")
	}
	return &parsed, nil
}

type AmountRequest struct {
	Amount string `json:"amount"`
}

// ParseAmount rejects anything that is not a strictly positive decimal.
func (r AmountRequest) ParseAmount() (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return decimal.Zero, errors.New("amount must be a decimal number")
	}
	if !parsed.IsPositive() {
		return decimal.Zero, errors.New("amount must be greater than zero")
	}
	return parsed, nil
}

type AccountResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customerId"`
	AccountTypeID string  `json:"accountTypeId"`
	Balance       string  `json:"balance"`
	State         bool    `json:"state"`
	CreatedAt     string  `json:"createdAt"`
	DeletedAt     *string `json:"deletedAt,omitempty"`
}

func NewAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		ID:            account.ID,
		CustomerID:    account.CustomerID,
		AccountTypeID: account.AccountTypeID,
		Balance:       account.Balance.String(),
		State:         account.State,
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
		DeletedAt:     formatDeletedAt(account.DeletedAt),
	}
}

func NewAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, NewAccountResponse(account))
	}
	return out
}

type BalanceResponse struct {
	AccountID string `json:"accountId"`
	Balance   string `json:"balance"`
}

type VerifyBalanceResponse struct {
	AccountID string `json:"accountId"`
	Amount    string `json:"amount"`
	Covered   bool   `json:"covered"`
}

type StateResponse struct {
	ID    string `json:"id"`
	State bool   `json:"state"`
}

type AccountTypeRequest struct {
	Name  string `json:"name"`
	State *bool  `json:"state,omitempty"`
}

func (r AccountTypeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type UpdateAccountTypeRequest struct {
	Name  *string `json:"name,omitempty"`
	State *bool   `json:"state,omitempty"`
}

type AccountTypeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State bool   `json:"state"`
}

func NewAccountTypeResponse(accountType domain.AccountType) AccountTypeResponse {
	return AccountTypeResponse{
		ID:    accountType.ID,
		Name:  accountType.Name,
		State: accountType.State,
	}
}

func NewAccountTypeResponses(accountTypes []domain.AccountType) []AccountTypeResponse {
	out := make([]AccountTypeResponse, 0, len(accountTypes))
	for _, accountType := range accountTypes {
		out = append(out, NewAccountTypeResponse(accountType))
	}
	return out
}
