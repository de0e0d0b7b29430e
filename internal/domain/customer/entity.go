package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a phone-authenticated identity, unrelated to staff accounts.
// The OTP is stored hashed and cleared as soon as it verifies.
type Customer struct {
	ID           uuid.UUID  `json:"id"`
	Phone        string     `json:"phone"`
	OTPHashed    *string    `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasValidOTP reports whether an unexpired OTP is pending verification.
func (c *Customer) HasValidOTP() bool {
	return c.OTPHashed != nil && c.OTPExpiresAt != nil && time.Now().Before(*c.OTPExpiresAt)
}

// OrderRef points at an order placed by a customer. Orders themselves live
// in an external system; only the reference is kept here.
type OrderRef struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Reference  string    `json:"reference"`
	CreatedAt  time.Time `json:"created_at"`
}
