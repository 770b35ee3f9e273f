package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
	"github.com/api-sage/bank-back-office/internal/usecase/service_interfaces"
)

// SecurityService issues and verifies the JWTs the HTTP layer authenticates
// with. Sign-up creates the customer and their first account in one call.
type SecurityService struct {
	customers  service_interfaces.CustomerService
	accounts   service_interfaces.AccountService
	signingKey []byte
	tokenTTL   time.Duration
}

func NewSecurityService(
	customers service_interfaces.CustomerService,
	accounts service_interfaces.AccountService,
	signingKey string,
	tokenTTL time.Duration,
) *SecurityService {
	return &SecurityService{
		customers:  customers,
		accounts:   accounts,
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
	}
}

func (s *SecurityService) SignUp(ctx context.Context, input service_interfaces.SignUpInput) (string, error) {
	logger.Info("security service sign up request", logger.Fields{
		"email": input.Email,
	})

	customer, err := s.customers.CreateCustomer(ctx, service_interfaces.CreateCustomerInput{
		FullName:       input.FullName,
		Document:       input.Document,
		DocumentTypeID: input.DocumentTypeID,
		Email:          input.Email,
		Password:       input.Password,
		Phone:          input.Phone,
	})
	if err != nil {
		return "", err
	}

	account, err := s.accounts.CreateAccount(ctx, customer.ID, input.AccountTypeID)
	if err != nil {
		return "", err
	}

	token, err := s.issueToken(customer.ID, customer.Email, account.ID)
	if err != nil {
		return "", err
	}

	logger.Info("security service sign up success", logger.Fields{
		"customerId": customer.ID,
		"accountId":  account.ID,
	})
	return token, nil
}

func (s *SecurityService) SignIn(ctx context.Context, email, password string) (string, error) {
	logger.Info("security service sign in request", logger.Fields{
		"email": email,
	})

	match, err := s.customers.FindByEmailAndPassword(ctx, email, password)
	if err != nil {
		return "", err
	}
	if !match {
		return "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	return s.issueToken(customer.ID, customer.Email, "")
}

// SignOut verifies the presented token. Tokens are stateless, so there is
// nothing to revoke; an invalid token is the only failure.
func (s *SecurityService) SignOut(_ context.Context, token string) error {
	claims, err := s.VerifyToken(token)
	if err != nil {
		return err
	}

	logger.Info("security service sign out", logger.Fields{
		"customerId": claims["sub"],
	})
	return nil
}

func (s *SecurityService) VerifyToken(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	return claims, nil
}

func (s *SecurityService) issueToken(customerID, email, accountID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   customerID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	if accountID != "" {
		claims["accountId"] = accountID
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
