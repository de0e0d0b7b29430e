package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPhoneTaken       = errors.New("phone number already registered")
	ErrOTPInvalid       = errors.New("invalid or expired OTP")
)
