package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferRequestValidateAndParseAmountAgree(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		valid  bool
	}{
		{"positive decimal", "10.50", true},
		{"zero", "0", false},
		{"negative", "-1", false},
		{"not a number", "ten", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := TransferRequest{
				OutcomeAccountID: "acc-1",
				IncomeAccountID:  "acc-2",
				Amount:           tc.amount,
			}

			_, parseErr := req.ParseAmount()
			validateErr := req.Validate()

			if tc.valid {
				require.NoError(t, parseErr)
				require.NoError(t, validateErr)
				return
			}
			// Validate and ParseAmount share one parse, so they must reject
			// the same inputs.
			assert.Error(t, parseErr)
			assert.Error(t, validateErr)
		})
	}
}

func TestTransferRequestValidateRejectsSameAccounts(t *testing.T) {
	req := TransferRequest{
		OutcomeAccountID: "acc-1",
		IncomeAccountID:  "acc-1",
		Amount:           "5",
	}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be the same")
}
