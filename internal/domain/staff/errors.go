package staff

import "errors"

var (
	ErrAccountNotFound = errors.New("user not found")
	ErrEmailTaken      = errors.New("user already exists")
	ErrAccountInactive = errors.New("user account is inactive")
	ErrInvalidRole     = errors.New("invalid user role")

	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
)
