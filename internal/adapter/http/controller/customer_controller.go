package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/api-sage/bank-back-office/internal/adapter/http/models"
	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

// CustomerController serves customers and the document type catalog they
// reference.
type CustomerController struct {
	service service_interfaces.CustomerService
}

func NewCustomerController(service service_interfaces.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

func (c *CustomerController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handle := registerWith(mux, authMiddleware)

	handle("POST /customers", c.createCustomer)
	handle("GET /customers", c.listCustomers)
	handle("GET /customers/search", c.searchCustomers)
	handle("GET /customers/{id}", c.getCustomer)
	handle("GET /customers/{id}/audit", c.getCustomerAudit)
	handle("PATCH /customers/{id}", c.updateCustomer)
	handle("PATCH /customers/{id}/unsubscribe", c.unsubscribeCustomer)
	handle("PATCH /customers/{id}/state/{state}", c.changeCustomerState)
	handle("DELETE /customers/{id}", c.deleteCustomer)

	handle("POST /document-types", c.createDocumentType)
	handle("GET /document-types", c.listDocumentTypes)
	handle("GET /document-types/search", c.searchDocumentTypes)
	handle("GET /document-types/{id}", c.getDocumentType)
	handle("PATCH /document-types/{id}", c.updateDocumentType)
	handle("DELETE /document-types/{id}", c.deleteDocumentType)
}

func (c *CustomerController) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()))
		return
	}

	customer, err := c.service.CreateCustomer(r.Context(), service_interfaces.CreateCustomerInput{
		FullName:       req.FullName,
		Document:       req.Document,
		DocumentTypeID: req.DocumentTypeID,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		AvatarURL:      req.AvatarURL,
	})
	if err != nil {
		respondError[models.CustomerResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("customer created", models.NewCustomerResponse(customer)))
}

func (c *CustomerController) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.service.FindAllCustomers(r.Context(), parsePagination(r.URL.Query()))
	if err != nil {
		respondError[[]models.CustomerResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("customers found", models.NewCustomerResponses(customers)))
}

func (c *CustomerController) searchCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	switch {
	case query.Get("email") != "":
		customer, err := c.service.FindByEmail(ctx, query.Get("email"))
		if err != nil {
			respondError[models.CustomerResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("customer found", models.NewCustomerResponse(customer)))
	case query.Get("phone") != "":
		customer, err := c.service.FindByPhone(ctx, query.Get("phone"))
		if err != nil {
			respondError[models.CustomerResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("customer found", models.NewCustomerResponse(customer)))
	case query.Get("document") != "":
		customer, err := c.service.FindByDocument(ctx, query.Get("documentTypeId"), query.Get("document"))
		if err != nil {
			respondError[models.CustomerResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("customer found", models.NewCustomerResponse(customer)))
	case query.Get("fullName") != "":
		customers, err := c.service.FindByFullName(ctx, query.Get("fullName"))
		if err != nil {
			respondError[[]models.CustomerResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("customers found", models.NewCustomerResponses(customers)))
	case query.Get("state") != "":
		state, err := strconv.ParseBool(query.Get("state"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.CustomerResponse]("state must be a boolean"))
			return
		}
		customers, err := c.service.FindByState(ctx, state)
		if err != nil {
			respondError[[]models.CustomerResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("customers found", models.NewCustomerResponses(customers)))
	default:
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.CustomerResponse]("no search criteria provided"))
	}
}

func (c *CustomerController) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := c.service.GetCustomer(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError[models.CustomerResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("customer found", models.NewCustomerResponse(customer)))
}

// getCustomerAudit also resolves soft deleted records.
func (c *CustomerController) getCustomerAudit(w http.ResponseWriter, r *http.Request) {
	customer, err := c.service.GetCustomerIncludingDeleted(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError[models.CustomerResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("customer found", models.NewCustomerResponse(customer)))
}

func (c *CustomerController) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()))
		return
	}

	customer, err := c.service.UpdateCustomer(r.Context(), r.PathValue("id"), service_interfaces.UpdateCustomerInput{
		FullName:       req.FullName,
		Document:       req.Document,
		DocumentTypeID: req.DocumentTypeID,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		State:          req.State,
		AvatarURL:      req.AvatarURL,
	})
	if err != nil {
		respondError[models.CustomerResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("customer updated", models.NewCustomerResponse(customer)))
}

func (c *CustomerController) unsubscribeCustomer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	changed, err := c.service.Unsubscribe(r.Context(), id)
	if err != nil {
		respondError[models.UnsubscribeResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("customer unsubscribed", models.UnsubscribeResponse{
		ID:      id,
		Changed: changed,
	}))
}

func (c *CustomerController) changeCustomerState(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, commons.SuccessResponse("customer state changed", models.StateResponse{ID: id, State: state}))
}

func (c *CustomerController) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	soft := r.URL.Query().Get("soft") == "true"

	var err error
	if soft {
		err = c.service.SoftDeleteCustomer(r.Context(), id)
	} else {
		err = c.service.DeleteCustomer(r.Context(), id)
	}
	if err != nil {
		respondError[struct{}](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("customer deleted", struct{}{}))
}

func (c *CustomerController) createDocumentType(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DocumentTypeResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DocumentTypeResponse]("validation failed", err.Error()))
		return
	}

	documentType, err := c.service.CreateDocumentType(r.Context(), service_interfaces.DocumentTypeInput{
		Name:  req.Name,
		State: req.State,
	})
	if err != nil {
		respondError[models.DocumentTypeResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("document type created", models.NewDocumentTypeResponse(documentType)))
}

func (c *CustomerController) listDocumentTypes(w http.ResponseWriter, r *http.Request) {
	documentTypes, err := c.service.FindAllDocumentTypes(r.Context(), parsePagination(r.URL.Query()))
	if err != nil {
		respondError[[]models.DocumentTypeResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("document types found", models.NewDocumentTypeResponses(documentTypes)))
}

func (c *CustomerController) searchDocumentTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	switch {
	case query.Get("name") != "":
		documentTypes, err := c.service.FindDocumentTypesByName(ctx, query.Get("name"))
		if err != nil {
			respondError[[]models.DocumentTypeResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("document types found", models.NewDocumentTypeResponses(documentTypes)))
	case query.Get("state") != "":
		state, err := strconv.ParseBool(query.Get("state"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.DocumentTypeResponse]("state must be a boolean"))
			return
		}
		documentTypes, err := c.service.FindDocumentTypesByState(ctx, state)
		if err != nil {
			respondError[[]models.DocumentTypeResponse](w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, commons.SuccessResponse("document types found", models.NewDocumentTypeResponses(documentTypes)))
	default:
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.DocumentTypeResponse]("no search criteria provided"))
	}
}

func (c *CustomerController) getDocumentType(w http.ResponseWriter, r *http.Request) {
	documentType, err := c.service.GetDocumentType(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError[models.DocumentTypeResponse](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("document type found", models.NewDocumentTypeResponse(documentType)))
}

func (c *CustomerController) updateDocumentType(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateDocumentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DocumentTypeResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	documentType, err := c.service.UpdateDocumentType(r.Context(), r.PathValue("id"), service_interfaces.UpdateDocumentTypeInput{
		Name:  req.Name,
		State: req.State,
	})
	if err != nil {
		respondError[models.DocumentTypeResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("document type updated", models.NewDocumentTypeResponse(documentType)))
}

func (c *CustomerController) deleteDocumentType(w http.ResponseWriter, r *http.Request) {
	soft := r.URL.Query().Get("soft") == "true"
	if err := c.service.DeleteDocumentType(r.Context(), r.PathValue("id"), soft); err != nil {
		respondError[struct{}](w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commons.SuccessResponse("document type deleted", struct{}{}))
}
