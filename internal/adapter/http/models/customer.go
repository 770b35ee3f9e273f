package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type CreateCustomerRequest struct {
	FullName       string  `json:"fullName"`
	Document       string  `json:"document"`
	DocumentTypeID string  `json:"documentTypeId"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Phone          string  `json:"phone"`
	AvatarURL      *string `json:"avatarUrl,omitempty"`
}

func (r CreateCustomerRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	if strings.TrimSpace(r.Document) == "" {
		errs = append(errs, "document is required")
	}
	if strings.TrimSpace(r.DocumentTypeID) == "" {
		errs = append(errs, "documentTypeId is required")
	}
	if err := validateEmail(r.Email); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePassword(r.Password); err != nil {
		errs = append(errs, err.Error())
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs = append(errs, "phone is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type UpdateCustomerRequest struct {
	FullName       *string `json:"fullName,omitempty"`
	Document       *string `json:"document,omitempty"`
	DocumentTypeID *string `json:"documentTypeId,omitempty"`
	Email          *string `json:"email,omitempty"`
	Password       *string `json:"password,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	State          *bool   `json:"state,omitempty"`
	AvatarURL      *string `json:"avatarUrl,omitempty"`
}

func (r UpdateCustomerRequest) Validate() error {
	var errs []string

	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if r.Password != nil {
		if err := validatePassword(*r.Password); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type CustomerResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"fullName"`
	Document       string  `json:"document"`
	DocumentTypeID string  `json:"documentTypeId"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	State          bool    `json:"state"`
	AvatarURL      *string `json:"avatarUrl,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	DeletedAt      *string `json:"deletedAt,omitempty"`
}

// NewCustomerResponse never exposes the password hash.
func NewCustomerResponse(customer domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             customer.ID,
		FullName:       customer.FullName,
		Document:       customer.Document,
		DocumentTypeID: customer.DocumentTypeID,
		Email:          customer.Email,
		Phone:          customer.Phone,
		State:          customer.State,
		AvatarURL:      customer.AvatarURL,
		CreatedAt:      customer.CreatedAt.Format(time.RFC3339),
		DeletedAt:      formatDeletedAt(customer.DeletedAt),
	}
}

func NewCustomerResponses(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, NewCustomerResponse(customer))
	}
	return out
}

// UnsubscribeResponse reports whether the call actually flipped the flag.
type UnsubscribeResponse struct {
	ID      string `json:"id"`
	Changed bool   `json:"changed"`
}

type DocumentTypeRequest struct {
	Name  string `json:"name"`
	State *bool  `json:"state,omitempty"`
}

func (r DocumentTypeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type UpdateDocumentTypeRequest struct {
	Name  *string `json:"name,omitempty"`
	State *bool   `json:"state,omitempty"`
}

type DocumentTypeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State bool   `json:"state"`
}

func NewDocumentTypeResponse(documentType domain.DocumentType) DocumentTypeResponse {
	return DocumentTypeResponse{
		ID:    documentType.ID,
		Name:  documentType.Name,
		State: documentType.State,
	}
}

func NewDocumentTypeResponses(documentTypes []domain.DocumentType) []DocumentTypeResponse {
	out := make([]DocumentTypeResponse, 0, len(documentTypes))
	for _, documentType := range documentTypes {
		out = append(out, NewDocumentTypeResponse(documentType))
	}
	return out
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errors.New("email is not valid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 5 || len(password) > 30 {
		return errors.New("password must be between 5 and 30 characters")
	}
	return nil
}

func formatDeletedAt(at *time.Time) *string {
	if at == nil {
		return nil
	}
	formatted := at.Format(time.RFC3339)
	return &formatted
}
