package controller

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/bank-back-office/internal/adapter/http/models"
	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

// SecurityController serves the unauthenticated sign-up/sign-in/sign-out
// endpoints, so RegisterRoutes ignores the auth middleware on purpose.
type SecurityController struct {
	service service_interfaces.SecurityService
}

func NewSecurityController(service service_interfaces.SecurityService) *SecurityController {
	return &SecurityController{service: service}
}

func (c *SecurityController) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.Handle("POST /security/sign-up", http.HandlerFunc(c.signUp))
	mux.Handle("POST /security/sign-in", http.HandlerFunc(c.signIn))
	mux.Handle("POST /security/sign-out", http.HandlerFunc(c.signOut))
}

func (c *SecurityController) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TokenResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TokenResponse]("validation failed", err.Error()))
		return
	}

	token, err := c.service.SignUp(r.Context(), service_interfaces.SignUpInput{
		DocumentTypeID: req.DocumentTypeID,
		Document:       req.Document,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		AccountTypeID:  req.AccountTypeID,
	})
	if err != nil {
		respondError[models.TokenResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("signed up", models.TokenResponse{Token: token}))
}

func (c *SecurityController) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TokenResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TokenResponse]("validation failed", err.Error()))
		return
	}

	token, err := c.service.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError[models.TokenResponse](w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("signed in", models.TokenResponse{Token: token}))
}

func (c *SecurityController) signOut(w http.ResponseWriter, r *http.Request) {
	var req models.SignOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[struct{}]("invalid request body", err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[struct{}]("validation failed", err.Error()))
		return
	}

	if err := c.service.SignOut(r.Context(), req.JWT); err != nil {
		respondError[struct{}](w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("signed out", struct{}{}))
}
