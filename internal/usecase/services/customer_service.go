package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/api-sage/bank-back-office/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

// CustomerService is the customer and document-type registry. The mutex
// serializes the uniqueness scans against the insert or update that follows,
// so two concurrent registrations cannot both pass the same email check.
type CustomerService struct {
	mu               sync.Mutex
	customerRepo     repo_interfaces.CustomerRepository
	documentTypeRepo repo_interfaces.DocumentTypeRepository
	guard            *DeletionGuard
}

func NewCustomerService(
	customerRepo repo_interfaces.CustomerRepository,
	documentTypeRepo repo_interfaces.DocumentTypeRepository,
	guard *DeletionGuard,
) *CustomerService {
	return &CustomerService{
		customerRepo:     customerRepo,
		documentTypeRepo: documentTypeRepo,
		guard:            guard,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, input service_interfaces.CreateCustomerInput) (domain.Customer, error) {
	logger.Info("customer service create customer request", logger.Fields{
		"payload": logger.SanitizePayload(input),
	})

	documentType, err := s.documentTypeRepo.GetByID(ctx, input.DocumentTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Customer{}, fmt.Errorf("%w: document type does not exist", domain.ErrRecordNotFound)
		}
		return domain.Customer{}, err
	}
	if !documentType.State {
		return domain.Customer{}, fmt.Errorf("%w: document type is not available", domain.ErrConflict)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUniqueness(ctx, input.Document, input.Email, input.Phone, ""); err != nil {
		return domain.Customer{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("customer service hash password failed", err, nil)
		return domain.Customer{}, fmt.Errorf("hash password: %w", err)
	}

	customer := domain.Customer{
		ID:             uuid.NewString(),
		FullName:       strings.TrimSpace(input.FullName),
		Document:       strings.TrimSpace(input.Document),
		DocumentTypeID: documentType.ID,
		Email:          strings.TrimSpace(input.Email),
		PasswordHash:   string(hash),
		Phone:          strings.TrimSpace(input.Phone),
		State:          true,
		AvatarURL:      input.AvatarURL,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		logger.Error("customer service create customer repository failed", err, logger.Fields{
			"customerId": customer.ID,
		})
		return domain.Customer{}, err
	}

	logger.Info("customer service create customer success", logger.Fields{
		"customerId": created.ID,
	})
	return created, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// GetCustomerIncludingDeleted is the audit read; it is the only lookup that
// sees soft-deleted customers.
func (s *CustomerService) GetCustomerIncludingDeleted(ctx context.Context, id string) (domain.Customer, error) {
	return s.customerRepo.GetByIDIncludingDeleted(ctx, id)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, patch service_interfaces.UpdateCustomerInput) (domain.Customer, error) {
	logger.Info("customer service update customer request", logger.Fields{
		"customerId": id,
		"payload":    logger.SanitizePayload(patch),
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	document := current.Document
	if patch.Document != nil {
		document = strings.TrimSpace(*patch.Document)
	}
	email := current.Email
	if patch.Email != nil {
		email = strings.TrimSpace(*patch.Email)
	}
	phone := current.Phone
	if patch.Phone != nil {
		phone = strings.TrimSpace(*patch.Phone)
	}
	// The uniqueness scan skips the customer being updated, so re-submitting
	// an unchanged email or phone does not conflict with itself.
	if err := s.checkUniqueness(ctx, document, email, phone, id); err != nil {
		return domain.Customer{}, err
	}

	if patch.DocumentTypeID != nil {
		documentType, err := s.documentTypeRepo.GetByID(ctx, *patch.DocumentTypeID)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return domain.Customer{}, fmt.Errorf("%w: document type does not exist", domain.ErrRecordNotFound)
			}
			return domain.Customer{}, err
		}
		if !documentType.State {
			return domain.Customer{}, fmt.Errorf("%w: document type is not available", domain.ErrConflict)
		}
		current.DocumentTypeID = documentType.ID
	}

	current.Document = document
	current.Email = email
	current.Phone = phone
	if patch.FullName != nil {
		current.FullName = strings.TrimSpace(*patch.FullName)
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.Customer{}, fmt.Errorf("hash password: %w", err)
		}
		current.PasswordHash = string(hash)
	}
	if patch.State != nil {
		current.State = *patch.State
	}
	if patch.AvatarURL != nil {
		current.AvatarURL = patch.AvatarURL
	}

	updated, err := s.customerRepo.Update(ctx, id, current)
	if err != nil {
		logger.Error("customer service update customer repository failed", err, logger.Fields{
			"customerId": id,
		})
		return domain.Customer{}, err
	}

	logger.Info("customer service update customer success", logger.Fields{
		"customerId": id,
	})
	return updated, nil
}

// Unsubscribe disables the customer. It reports true only when the call
// flipped the state, so a second call is a no-op returning false.
func (s *CustomerService) Unsubscribe(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !customer.State {
		return false, nil
	}

	customer.State = false
	if _, err := s.customerRepo.Update(ctx, id, customer); err != nil {
		return false, err
	}

	logger.Info("customer service unsubscribe success", logger.Fields{
		"customerId": id,
	})
	return true, nil
}

// ChangeState rewrites the whole entity, so it takes the registry mutex like
// every other customer write; otherwise it could revert a concurrent update.
func (s *CustomerService) ChangeState(ctx context.Context, id string, state bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	customer.State = state
	_, err = s.customerRepo.Update(ctx, id, customer)
	return err
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.guard.RemoveCustomer(ctx, id, func() error {
		logger.Info("customer service delete customer", logger.Fields{"customerId": id})
		return s.customerRepo.Delete(ctx, id)
	})
}

func (s *CustomerService) SoftDeleteCustomer(ctx context.Context, id string) error {
	if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.guard.RemoveCustomer(ctx, id, func() error {
		logger.Info("customer service soft delete customer", logger.Fields{"customerId": id})
		return s.customerRepo.SoftDelete(ctx, id)
	})
}

func (s *CustomerService) FindAllCustomers(ctx context.Context, pagination commons.Pagination) ([]domain.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return commons.Paginate(customers, pagination), nil
}

func (s *CustomerService) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	return s.customerRepo.GetByEmail(ctx, email)
}

func (s *CustomerService) FindByPhone(ctx context.Context, phone string) (domain.Customer, error) {
	return s.customerRepo.GetByPhone(ctx, phone)
}

func (s *CustomerService) FindByDocument(ctx context.Context, documentTypeID, document string) (domain.Customer, error) {
	return s.customerRepo.GetByDocument(ctx, documentTypeID, document)
}

func (s *CustomerService) FindByState(ctx context.Context, state bool) ([]domain.Customer, error) {
	return s.customerRepo.GetByState(ctx, state)
}

func (s *CustomerService) FindByFullName(ctx context.Context, fullName string) ([]domain.Customer, error) {
	return s.customerRepo.GetByFullName(ctx, fullName)
}

// FindByEmailAndPassword reports whether the credentials match a live
// customer. A failed match is false, never an error.
func (s *CustomerService) FindByEmailAndPassword(ctx context.Context, email, password string) (bool, error) {
	customer, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *CustomerService) checkUniqueness(ctx context.Context, document, email, phone, excludeID string) error {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, existing := range customers {
		if existing.ID == excludeID {
			continue
		}
		if existing.Document == document {
			return fmt.Errorf("%w: this document is already used by another customer", domain.ErrConflict)
		}
		if existing.Email == email {
			return fmt.Errorf("%w: this email is already used by another customer", domain.ErrConflict)
		}
		if existing.Phone == phone {
			return fmt.Errorf("%w: this phone is already used by another customer", domain.ErrConflict)
		}
	}
	return nil
}
