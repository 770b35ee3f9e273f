package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/bank-back-office/internal/adapter/http/models"
	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

type TransferController struct {
	service service_interfaces.TransferService
}

func NewTransferController(service service_interfaces.TransferService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handle := registerWith(mux, authMiddleware)

	handle("POST /transfers", c.registerTransfer)
	handle("POST /transfers/perform", c.performTransfer)
	handle("GET /transfers", c.listTransfers)
	handle("GET /transfers/{id}", c.getTransfer)
	handle("PATCH /transfers/{id}", c.updateTransfer)
	handle("DELETE /transfers/{id}", c.deleteTransfer)
	handle("GET /transfers/outcome/{accountId}", c.listOutcomeByDateRange)
	handle("GET /transfers/income/{accountId}", c.listIncomeByDateRange)
}

// registerTransfer records a transfer without touching balances.
func (c *TransferController) registerTransfer(w http.ResponseWriter, r *http.Request) {
	c.handleTransfer(w, r, "transfer registered", c.service.RegisterTransfer)
}

// performTransfer moves money between the two accounts and records the
// transfer.
func (c *TransferController) performTransfer(w http.ResponseWriter, r *http.Request) {
	c.handleTransfer(w, r, "transfer performed", c.service.PerformTransfer)
}

func (c *TransferController) handleTransfer(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	run func(ctx context.Context, input service_interfaces.RegisterTransferInput) (domain.Transfer, error),
) {
	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()))
		return
	}
	amount, err := req.ParseAmount()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()))
		return
	}

	transfer, err := run(r.Context(), service_interfaces.RegisterTransferInput{
		OutcomeAccountID: req.OutcomeAccountID,
		IncomeAccountID:  req.IncomeAccountID,
		Amount:           amount,
		Reason:           req.Reason,
	})
	if err != nil {
		respondError[models.TransferResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse(message, models.NewTransferResponse(transfer)))
}

func (c *TransferController) listTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, err := c.service.FindAllTransfers(r.Context(), parsePagination(r.URL.Query()))
	if err != nil {
		respondError[[]models.TransferResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("transfers found", models.NewTransferResponses(transfers)))
}

func (c *TransferController) getTransfer(w http.ResponseWriter, r *http.Request) {
	transfer, err := c.service.GetTransfer(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError[models.TransferResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("transfer found", models.NewTransferResponse(transfer)))
}

func (c *TransferController) updateTransfer(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	amount, err := req.ParseAmount()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()))
		return
	}
	dateTime, err := req.ParseDateTime()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()))
		return
	}

	transfer, err := c.service.UpdateTransfer(r.Context(), r.PathValue("id"), service_interfaces.UpdateTransferInput{
		OutcomeAccountID: req.OutcomeAccountID,
		IncomeAccountID:  req.IncomeAccountID,
		Amount:           amount,
		Reason:           req.Reason,
		DateTime:         dateTime,
	})
	if err != nil {
		respondError[models.TransferResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("transfer updated", models.NewTransferResponse(transfer)))
}

func (c *TransferController) deleteTransfer(w http.ResponseWriter, r *http.Request) {
	soft := r.URL.Query().Get("soft") == "true"
	if err := c.service.DeleteTransfer(r.Context(), r.PathValue("id"), soft); err != nil {
		respondError[struct{}](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("transfer deleted", struct{}{}))
}

func (c *TransferController) listOutcomeByDateRange(w http.ResponseWriter, r *http.Request) {
	c.listByDateRange(w, r, c.service.FindOutcomeByDateRange)
}

func (c *TransferController) listIncomeByDateRange(w http.ResponseWriter, r *http.Request) {
	c.listByDateRange(w, r, c.service.FindIncomeByDateRange)
}

func (c *TransferController) listByDateRange(
	w http.ResponseWriter,
	r *http.Request,
	find func(ctx context.Context, accountID string, start, end time.Time) ([]domain.Transfer, error),
) {
	start, end, err := parseDateRange(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.TransferResponse]("validation failed", err.Error()))
		return
	}

	transfers, err := find(r.Context(), r.PathValue("accountId"), start, end)
	if err != nil {
		respondError[[]models.TransferResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("transfers found", models.NewTransferResponses(transfers)))
}
