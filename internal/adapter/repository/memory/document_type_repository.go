package memory

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type DocumentTypeRepository struct {
	store *Store[domain.DocumentType, *domain.DocumentType]
}

func NewDocumentTypeRepository(notifier Notifier) *DocumentTypeRepository {
	return &DocumentTypeRepository{store: NewStore[domain.DocumentType]("document_type", notifier)}
}

func (r *DocumentTypeRepository) Create(_ context.Context, documentType domain.DocumentType) (domain.DocumentType, error) {
	return r.store.Add(documentType), nil
}

func (r *DocumentTypeRepository) Update(_ context.Context, id string, documentType domain.DocumentType) (domain.DocumentType, error) {
	documentType.ID = id
	return r.store.Replace(id, documentType)
}

func (r *DocumentTypeRepository) Delete(_ context.Context, id string) error {
	return r.store.Remove(id)
}

func (r *DocumentTypeRepository) SoftDelete(_ context.Context, id string) error {
	return r.store.RemoveSoft(id)
}

func (r *DocumentTypeRepository) GetByID(_ context.Context, id string) (domain.DocumentType, error) {
	return r.store.FindByID(id)
}

func (r *DocumentTypeRepository) GetAll(_ context.Context) ([]domain.DocumentType, error) {
	return r.store.All(), nil
}

func (r *DocumentTypeRepository) GetByState(_ context.Context, state bool) ([]domain.DocumentType, error) {
	return r.store.Filter(func(d domain.DocumentType) bool { return d.State == state }), nil
}

func (r *DocumentTypeRepository) GetByName(_ context.Context, name string) ([]domain.DocumentType, error) {
	return r.store.Filter(func(d domain.DocumentType) bool { return d.Name == name }), nil
}
