package customer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for customer persistence
type Repository interface {
	Create(ctx context.Context, cust *Customer) error
	GetByPhone(ctx context.Context, phone string) (*Customer, error)
	GetByID(ctx context.Context, customerID uuid.UUID) (*Customer, error)
	SetOTP(ctx context.Context, customerID uuid.UUID, otpHash string, expiresAt time.Time) error
	ClearOTP(ctx context.Context, customerID uuid.UUID) error
	ListOrders(ctx context.Context, customerID uuid.UUID) ([]*OrderRef, error)
}
