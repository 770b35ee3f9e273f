package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/api-sage/bank-back-office/internal/adapter/http/models"
	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

// AccountController serves accounts, their balance operations and the account
// type catalog.
type AccountController struct {
	service service_interfaces.AccountService
}

func NewAccountController(service service_interfaces.AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handle := registerWith(mux, authMiddleware)

	handle("POST /accounts", c.createAccount)
	handle("GET /accounts", c.listAccounts)
	handle("GET /accounts/search", c.searchAccounts)
	handle("GET /accounts/{id}", c.getAccount)
	handle("GET /accounts/{id}/audit", c.getAccountAudit)
	handle("PATCH /accounts/{id}", c.updateAccount)
	handle("DELETE /accounts/{id}", c.deleteAccount)

	handle("GET /accounts/{id}/balance", c.getBalance)
	handle("POST /accounts/{id}/balance/add", c.addBalance)
	handle("POST /accounts/{id}/balance/remove", c.removeBalance)
	handle("GET /accounts/{id}/balance/verify", c.verifyBalance)

	handle("GET /accounts/{id}/state", c.getState)
	handle("PATCH /accounts/{id}/state/{state}", c.changeState)
	handle("GET /accounts/{id}/type", c.getAccountType)
	handle("PATCH /accounts/{id}/type/{typeId}", c.changeAccountType)

	handle("POST /account-types", c.createAccountType)
	handle("GET /account-types", c.listAccountTypes)
	handle("GET /account-types/search", c.searchAccountTypes)
	handle("GET /account-types/{id}", c.getAccountTypeByID)
	handle("PATCH /account-types/{id}", c.updateAccountType)
	handle("DELETE /account-types/{id}", c.deleteAccountType)
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	account, err := c.service.CreateAccount(r.Context(), req.CustomerID, req.AccountTypeID)
	if err != nil {
		respondError[models.AccountResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("account created", models.NewAccountResponse(account)))
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.service.FindAllAccounts(r.Context(), parsePagination(r.URL.Query()))
	if err != nil {
		respondError[[]models.AccountResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("accounts found", models.NewAccountResponses(accounts)))
}

func (c *AccountController) searchAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	switch {
	case query.Get("customerId") != "":
		accounts, err := c.service.FindAccountsByCustomer(ctx, query.Get("customerId"))
		if err != nil {
			respondError[[]models.AccountResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("accounts found", models.NewAccountResponses(accounts)))
	case query.Get("accountTypeId") != "":
		accounts, err := c.service.FindAccountsByAccountType(ctx, query.Get("accountTypeId"))
		if err != nil {
			respondError[[]models.AccountResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("accounts found", models.NewAccountResponses(accounts)))
	case query.Get("state") != "":
		state, err := strconv.ParseBool(query.Get("state"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.AccountResponse]("state must be a boolean"))
			return
		}
		accounts, err := c.service.FindAccountsByState(ctx, state)
		if err != nil {
			respondError[[]models.AccountResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("accounts found", models.NewAccountResponses(accounts)))
	default:
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.AccountResponse]("no search criteria provided"))
	}
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	account, err := c.service.GetAccount(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError[models.AccountResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account found", models.NewAccountResponse(account)))
}

// getAccountAudit also resolves soft deleted records.
func (c *AccountController) getAccountAudit(w http.ResponseWriter, r *http.Request) {
	account, err := c.service.GetAccountIncludingDeleted(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError[models.AccountResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account found", models.NewAccountResponse(account)))
}

func (c *AccountController) updateAccount(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	balance, err := req.ParseBalance()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	account, err := c.service.UpdateAccount(r.Context(), r.PathValue("id"), service_interfaces.UpdateAccountInput{
		CustomerID:    req.CustomerID,
		AccountTypeID: req.AccountTypeID,
		Balance:       balance,
		State:         req.State,
	})
	if err != nil {
		respondError[models.AccountResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("account updated", models.NewAccountResponse(account)))
}

func (c *AccountController) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	soft := r.URL.Query().Get("soft") == "true"

	var err error
	if soft {
		err = c.service.SoftDeleteAccount(r.Context(), id)
	} else {
		err = c.service.DeleteAccount(r.Context(), id)
	}
	if err != nil {
		respondError[struct{}](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account deleted", struct{}{}))
}

func (c *AccountController) getBalance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	balance, err := c.service.GetBalance(r.Context(), id)
	if err != nil {
		respondError[models.BalanceResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("balance found", models.BalanceResponse{
		AccountID: id,
		Balance:   balance.String(),
	}))
}

func (c *AccountController) addBalance(w http.ResponseWriter, r *http.Request) {
	c.adjustBalance(w, r, "balance added", c.service.AddBalance)
}

func (c *AccountController) removeBalance(w http.ResponseWriter, r *http.Request) {
	c.adjustBalance(w, r, "balance removed", c.service.RemoveBalance)
}

func (c *AccountController) adjustBalance(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	adjust func(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error),
) {
	var req models.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.BalanceResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	amount, err := req.ParseAmount()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()))
		return
	}

	id := r.PathValue("id")
	balance, err := adjust(r.Context(), id, amount)
	if err != nil {
		respondError[models.BalanceResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse(message, models.BalanceResponse{
		AccountID: id,
		Balance:   balance.String(),
	}))
}

func (c *AccountController) verifyBalance(w http.ResponseWriter, r *http.Request) {
	amount, err := (models.AmountRequest{Amount: r.URL.Query().Get("amount")}).ParseAmount()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.VerifyBalanceResponse]("validation failed", err.Error()))
		return
	}

	id := r.PathValue("id")
	covered, err := c.service.VerifyAmountIntoBalance(r.Context(), id, amount)
	if err != nil {
		respondError[models.VerifyBalanceResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("balance verified", models.VerifyBalanceResponse{
		AccountID: id,
		Amount:    amount.String(),
		Covered:   covered,
	}))
}

func (c *AccountController) getState(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	state, err := c.service.GetState(r.Context(), id)
	if err != nil {
		respondError[models.StateResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account state found", models.StateResponse{ID: id, State: state}))
}

func (c *AccountController) changeState(w http.ResponseWriter, r *http.Request) {
	state, err := strconv.ParseBool(r.PathValue("state"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.StateResponse]("state must be a boolean"))
		return
	}

	id := r.PathValue("id")
	if err := c.service.ChangeState(r.Context(), id, state); err != nil {
		respondError[models.StateResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account state changed", models.StateResponse{ID: id, State: state}))
}

func (c *AccountController) getAccountType(w http.ResponseWriter, r *http.Request) {
	accountType, err := c.service.GetAccountType(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError[models.AccountTypeResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account type found", models.NewAccountTypeResponse(accountType)))
}

func (c *AccountController) changeAccountType(w http.ResponseWriter, r *http.Request) {
	accountType, err := c.service.ChangeAccountType(r.Context(), r.PathValue("id"), r.PathValue("typeId"))
	if err != nil {
		respondError[models.AccountTypeResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account type changed", models.NewAccountTypeResponse(accountType)))
}

func (c *AccountController) createAccountType(w http.ResponseWriter, r *http.Request) {
	var req models.AccountTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountTypeResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountTypeResponse]("validation failed", err.Error()))
		return
	}

	accountType, err := c.service.CreateAccountType(r.Context(), service_interfaces.AccountTypeInput{
		Name:  req.Name,
		State: req.State,
	})
	if err != nil {
		respondError[models.AccountTypeResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("account type created", models.NewAccountTypeResponse(accountType)))
}

func (c *AccountController) listAccountTypes(w http.ResponseWriter, r *http.Request) {
	accountTypes, err := c.service.FindAllAccountTypes(r.Context(), parsePagination(r.URL.Query()))
	if err != nil {
		respondError[[]models.AccountTypeResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account types found", models.NewAccountTypeResponses(accountTypes)))
}

func (c *AccountController) searchAccountTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	switch {
	case query.Get("name") != "":
		accountTypes, err := c.service.FindAccountTypesByName(ctx, query.Get("name"))
		if err != nil {
			respondError[[]models.AccountTypeResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("account types found", models.NewAccountTypeResponses(accountTypes)))
	case query.Get("state") != "":
		state, err := strconv.ParseBool(query.Get("state"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.AccountTypeResponse]("state must be a boolean"))
			return
		}
		accountTypes, err := c.service.FindAccountTypesByState(ctx, state)
		if err != nil {
			respondError[[]models.AccountTypeResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("account types found", models.NewAccountTypeResponses(accountTypes)))
	default:
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.AccountTypeResponse]("no search criteria provided"))
	}
}

func (c *AccountController) getAccountTypeByID(w http.ResponseWriter, r *http.Request) {
	accountType, err := c.service.GetAccountTypeByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError[models.AccountTypeResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account type found", models.NewAccountTypeResponse(accountType)))
}

func (c *AccountController) updateAccountType(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAccountTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountTypeResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	accountType, err := c.service.UpdateAccountType(r.Context(), r.PathValue("id"), service_interfaces.UpdateAccountTypeInput{
		Name:  req.Name,
		State: req.State,
	})
	if err != nil {
		respondError[models.AccountTypeResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("account type updated", models.NewAccountTypeResponse(accountType)))
}

func (c *AccountController) deleteAccountType(w http.ResponseWriter, r *http.Request) {
	soft := r.URL.Query().Get("soft") == "true"
	if err := c.service.DeleteAccountType(r.Context(), r.PathValue("id"), soft); err != nil {
		respondError[struct{}](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("account type deleted", struct{}{}))
}
