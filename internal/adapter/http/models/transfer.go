package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type TransferRequest struct {
	OutcomeAccountID string `json:"outcomeAccountId"`
	IncomeAccountID  string `json:"incomeAccountId"`
	Amount           string `json:"amount"`
	Reason           string `json:"reason"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.OutcomeAccountID) == "" {
		errs = append(errs, "outcomeAccountId is required")
	}
	if strings.TrimSpace(r.IncomeAccountID) == "" {
		errs = append(errs, "incomeAccountId is required")
	}
	if strings.TrimSpace(r.OutcomeAccountID) != "" && r.OutcomeAccountID == r.IncomeAccountID {
		errs = append(errs, "outcomeAccountId and incomeAccountId cannot be the same")
	}
	if _, err := r.ParseAmount(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// ParseAmount validates and converts the amount field. Validate and the
// handler both go through here, so the rules cannot drift apart.
func (r TransferRequest) ParseAmount() (decimal.Decimal, error) {
	return AmountRequest{Amount: r.Amount}.ParseAmount()
}

type UpdateTransferRequest struct {
	OutcomeAccountID *string `json:"outcomeAccountId,omitempty"`
	IncomeAccountID  *string `json:"incomeAccountId,omitempty"`
	Amount           *string `json:"amount,omitempty"`
	Reason           *string `json:"reason,omitempty"`
	DateTime         *string `json:"dateTime,omitempty"`
}

// ParseAmount validates and converts the optional amount field.
func (r UpdateTransferRequest) ParseAmount() (*decimal.Decimal, error) {
	if r.Amount == nil {
		return nil, nil
	}
	parsed, err := (AmountRequest{Amount: *r.Amount}).ParseAmount()
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ParseDateTime validates and converts the optional dateTime field.
func (r UpdateTransferRequest) ParseDateTime() (*time.Time, error) {
	if r.DateTime == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(*r.DateTime))
	if err != nil {
		return nil, errors.New("dateTime must be in RFC3339 format")
	}
	return &parsed, nil
}

type TransferResponse struct {
	ID               string  `json:"id"`
	OutcomeAccountID string  `json:"outcomeAccountId"`
	IncomeAccountID  string  `json:"incomeAccountId"`
	Amount           string  `json:"amount"`
	Reason           string  `json:"reason"`
	DateTime         string  `json:"dateTime"`
	DeletedAt        *string `json:"deletedAt,omitempty"`
}

func NewTransferResponse(transfer domain.Transfer) TransferResponse {
	return TransferResponse{
		ID:               transfer.ID,
		OutcomeAccountID: transfer.OutcomeAccountID,
		IncomeAccountID:  transfer.IncomeAccountID,
		Amount:           transfer.Amount.String(),
		Reason:           transfer.Reason,
		DateTime:         transfer.DateTime.Format(time.RFC3339),
		DeletedAt:        formatDeletedAt(transfer.DeletedAt),
	}
}

func NewTransferResponses(transfers []domain.Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(transfers))
	for _, transfer := range transfers {
		out = append(out, NewTransferResponse(transfer))
	}
	return out
}
