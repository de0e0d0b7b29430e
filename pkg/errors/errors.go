package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrUnauthorized            = errors.New("unauthorized access")
	ErrInsufficientPermissions = errors.New("insufficient permissions")

	ErrAccountNotFound  = errors.New("user not found")
	ErrEmailTaken       = errors.New("user already exists")
	ErrAccountInactive  = errors.New("user account is inactive")
	ErrInvalidRole      = errors.New("invalid user role")
	ErrCustomerNotFound = errors.New("customer not found")

	ErrInvalidInput = errors.New("invalid input data")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrWeakPassword = errors.New("password does not meet requirements")

	ErrActivationTokenInvalid = errors.New("invalid or expired activation token")
	ErrActivationCodeMismatch = errors.New("invalid activation code")
	ErrOTPInvalid             = errors.New("invalid or expired OTP")
	ErrMailDelivery           = errors.New("failed to deliver activation email")
	ErrSMSDelivery            = errors.New("failed to deliver OTP message")

	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInvalid  = errors.New("category does not exist")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
