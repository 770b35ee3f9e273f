package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

// Account-type sub-registry, symmetric to the document-type one.

func (s *AccountService) CreateAccountType(ctx context.Context, input service_interfaces.AccountTypeInput) (domain.AccountType, error) {
	accountType := domain.AccountType{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(input.Name),
		State: true,
	}
	if input.State != nil {
		accountType.State = *input.State
	}

	created, err := s.accountTypeRepo.Create(ctx, accountType)
	if err != nil {
		return domain.AccountType{}, err
	}

	logger.Info("account service create account type success", logger.Fields{
		"accountTypeId": created.ID,
		"name":          created.Name,
	})
	return created, nil
}

func (s *AccountService) UpdateAccountType(ctx context.Context, id string, patch service_interfaces.UpdateAccountTypeInput) (domain.AccountType, error) {
	current, err := s.accountTypeRepo.GetByID(ctx, id)
	if err != nil {
		return domain.AccountType{}, err
	}

	if patch.Name != nil {
		current.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.State != nil {
		current.State = *patch.State
	}

	return s.accountTypeRepo.Update(ctx, id, current)
}

func (s *AccountService) DeleteAccountType(ctx context.Context, id string, soft bool) error {
	logger.Info("account service delete account type", logger.Fields{
		"accountTypeId": id,
		"soft":          soft,
	})
	if soft {
		return s.accountTypeRepo.SoftDelete(ctx, id)
	}
	return s.accountTypeRepo.Delete(ctx, id)
}

func (s *AccountService) GetAccountTypeByID(ctx context.Context, id string) (domain.AccountType, error) {
	return s.accountTypeRepo.GetByID(ctx, id)
}

func (s *AccountService) FindAllAccountTypes(ctx context.Context, pagination commons.Pagination) ([]domain.AccountType, error) {
	accountTypes, err := s.accountTypeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return commons.Paginate(accountTypes, pagination), nil
}

func (s *AccountService) FindAccountTypesByState(ctx context.Context, state bool) ([]domain.AccountType, error) {
	return s.accountTypeRepo.GetByState(ctx, state)
}

func (s *AccountService) FindAccountTypesByName(ctx context.Context, name string) ([]domain.AccountType, error) {
	return s.accountTypeRepo.GetByName(ctx, name)
}
