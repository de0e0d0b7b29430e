package customer

import (
	"time"

	domainCustomer "github.com/AyushiSrivastava11/VRV-Backend/internal/domain/customer"
	"github.com/google/uuid"
)

type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

type RequestOTPResponse struct {
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expires_at"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Customer  *CustomerResponse `json:"customer"`
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expires_at"`
}

type OrderResponse struct {
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

func ToCustomerResponse(c *domainCustomer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func ToOrderResponse(o *domainCustomer.OrderRef) *OrderResponse {
	return &OrderResponse{
		ID:        o.ID,
		Reference: o.Reference,
		CreatedAt: o.CreatedAt,
	}
}
