package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
)

type CreateCustomerInput struct {
	FullName       string
	Document       string
	DocumentTypeID string
	Email          string
	Password       string
	Phone          string
	AvatarURL      *string
}

// UpdateCustomerInput is a patch: nil fields are left untouched.
type UpdateCustomerInput struct {
	FullName       *string
	Document       *string
	DocumentTypeID *string
	Email          *string
	Password       *string
	Phone          *string
	State          *bool
	AvatarURL      *string
}

type DocumentTypeInput struct {
	Name  string
	State *bool
}

type UpdateDocumentTypeInput struct {
	Name  *string
	State *bool
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (domain.Customer, error)
	GetCustomerIncludingDeleted(ctx context.Context, id string) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch UpdateCustomerInput) (domain.Customer, error)
	Unsubscribe(ctx context.Context, id string) (bool, error)
	ChangeState(ctx context.Context, id string, state bool) error
	DeleteCustomer(ctx context.Context, id string) error
	SoftDeleteCustomer(ctx context.Context, id string) error
	FindAllCustomers(ctx context.Context, pagination commons.Pagination) ([]domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (domain.Customer, error)
	FindByPhone(ctx context.Context, phone string) (domain.Customer, error)
	FindByDocument(ctx context.Context, documentTypeID, document string) (domain.Customer, error)
	FindByState(ctx context.Context, state bool) ([]domain.Customer, error)
	FindByFullName(ctx context.Context, fullName string) ([]domain.Customer, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (bool, error)

	CreateDocumentType(ctx context.Context, input DocumentTypeInput) (domain.DocumentType, error)
	UpdateDocumentType(ctx context.Context, id string, patch UpdateDocumentTypeInput) (domain.DocumentType, error)
	DeleteDocumentType(ctx context.Context, id string, soft bool) error
	GetDocumentType(ctx context.Context, id string) (domain.DocumentType, error)
	FindAllDocumentTypes(ctx context.Context, pagination commons.Pagination) ([]domain.DocumentType, error)
	FindDocumentTypesByState(ctx context.Context, state bool) ([]domain.DocumentType, error)
	FindDocumentTypesByName(ctx context.Context, name string) ([]domain.DocumentType, error)
}
