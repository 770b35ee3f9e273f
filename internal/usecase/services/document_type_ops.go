package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

// Document-type sub-registry. Lives on CustomerService because customers are
// the only entities referencing document types.

func (s *CustomerService) CreateDocumentType(ctx context.Context, input service_interfaces.DocumentTypeInput) (domain.DocumentType, error) {
	name := strings.TrimSpace(input.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.documentTypeRepo.GetByName(ctx, name)
	if err != nil {
		return domain.DocumentType{}, err
	}
	if len(existing) > 0 {
		return domain.DocumentType{}, fmt.Errorf("%w: a document type with this name already exists", domain.ErrConflict)
	}

	documentType := domain.DocumentType{
		ID:    uuid.NewString(),
		Name:  name,
		State: true,
	}
	if input.State != nil {
		documentType.State = *input.State
	}

	created, err := s.documentTypeRepo.Create(ctx, documentType)
	if err != nil {
		return domain.DocumentType{}, err
	}

	logger.Info("customer service create document type success", logger.Fields{
		"documentTypeId": created.ID,
		"name":           created.Name,
	})
	return created, nil
}

func (s *CustomerService) UpdateDocumentType(ctx context.Context, id string, patch service_interfaces.UpdateDocumentTypeInput) (domain.DocumentType, error) {
	current, err := s.documentTypeRepo.GetByID(ctx, id)
	if err != nil {
		return domain.DocumentType{}, err
	}

	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.State != nil {
		current.State = *patch.State
	}

	return s.documentTypeRepo.Update(ctx, id, current)
}

func (s *CustomerService) DeleteDocumentType(ctx context.Context, id string, soft bool) error {
	logger.Info("customer service delete document type", logger.Fields{
		"documentTypeId": id,
		"soft":           soft,
	})
	if soft {
		return s.documentTypeRepo.SoftDelete(ctx, id)
	}
	return s.documentTypeRepo.Delete(ctx, id)
}

func (s *CustomerService) GetDocumentType(ctx context.Context, id string) (domain.DocumentType, error) {
	return s.documentTypeRepo.GetByID(ctx, id)
}

func (s *CustomerService) FindAllDocumentTypes(ctx context.Context, pagination commons.Pagination) ([]domain.DocumentType, error) {
	documentTypes, err := s.documentTypeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return commons.Paginate(documentTypes, pagination), nil
}

func (s *CustomerService) FindDocumentTypesByState(ctx context.Context, state bool) ([]domain.DocumentType, error) {
	return s.documentTypeRepo.GetByState(ctx, state)
}

func (s *CustomerService) FindDocumentTypesByName(ctx context.Context, name string) ([]domain.DocumentType, error) {
	return s.documentTypeRepo.GetByName(ctx, name)
}
