package service_interfaces

import "context"

type SignUpInput struct {
	DocumentTypeID string
	Document       string
	FullName       string
	Email          string
	Phone          string
	Password       string
	AccountTypeID  string
}

type SecurityService interface {
	SignUp(ctx context.Context, input SignUpInput) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	SignOut(ctx context.Context, token string) error
}
