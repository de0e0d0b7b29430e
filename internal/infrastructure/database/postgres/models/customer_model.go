package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel is the database model for a phone-authenticated customer.
// Phone carries a unique index; the OTP columns are null whenever no
// verification is pending.
type CustomerModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Phone        string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	OTPHashed    *string    `gorm:"type:varchar(255)"`
	OTPExpiresAt *time.Time `gorm:"type:timestamp"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}

// OrderRefModel keeps references to orders placed by a customer.
type OrderRefModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Reference  string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (OrderRefModel) TableName() string {
	return "customer_orders"
}
