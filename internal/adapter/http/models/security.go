package models

import (
	"errors"
	"strings"
)

type SignUpRequest struct {
	DocumentTypeID string `json:"documentTypeId"`
	Document       string `json:"document"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Password       string `json:"password"`
	AccountTypeID  string `json:"accountTypeId"`
}

func (r SignUpRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.DocumentTypeID) == "" {
		errs = append(errs, "documentTypeId is required")
	}
	if strings.TrimSpace(r.Document) == "" {
		errs = append(errs, "document is required")
	}
	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	if err := validateEmail(r.Email); err != nil {
		errs = append(errs, err.Error())
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	if err := validatePassword(r.Password); err != nil {
		errs = append(errs, err.Error())
	}
	if strings.TrimSpace(r.AccountTypeID) == "" {
		errs = append(errs, "accountTypeId is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r SignInRequest) Validate() error {
	var errs []string

	if err := validateEmail(r.Username); err != nil {
		errs = append(errs, "username must be a valid email")
	}
	if err := validatePassword(r.Password); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type SignOutRequest struct {
	JWT string `json:"jwt"`
}

func (r SignOutRequest) Validate() error {
	if strings.TrimSpace(r.JWT) == "" {
		return errors.New("jwt is required")
	}
	return nil
}

type TokenResponse struct {
	Token string `json:"token"`
}
