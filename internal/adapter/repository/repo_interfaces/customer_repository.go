package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Update(ctx context.Context, id string, customer domain.Customer) (domain.Customer, error)
	Delete(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.Customer, error)
	GetByIDIncludingDeleted(ctx context.Context, id string) (domain.Customer, error)
	GetAll(ctx context.Context) ([]domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (domain.Customer, error)
	GetByDocument(ctx context.Context, documentTypeID, document string) (domain.Customer, error)
	GetByState(ctx context.Context, state bool) ([]domain.Customer, error)
	GetByFullName(ctx context.Context, fullName string) ([]domain.Customer, error)
}

type DocumentTypeRepository interface {
	Create(ctx context.Context, documentType domain.DocumentType) (domain.DocumentType, error)
	Update(ctx context.Context, id string, documentType domain.DocumentType) (domain.DocumentType, error)
	Delete(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.DocumentType, error)
	GetAll(ctx context.Context) ([]domain.DocumentType, error)
	GetByState(ctx context.Context, state bool) ([]domain.DocumentType, error)
	GetByName(ctx context.Context, name string) ([]domain.DocumentType, error)
}
