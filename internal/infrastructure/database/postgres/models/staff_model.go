package models

import (
	"time"

	"github.com/google/uuid"
)

// StaffAccountModel is the database model for a staff account. The unique
// index on email is the final arbiter for concurrent duplicate
// registrations.
type StaffAccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"type:varchar(255);not null"`
	AvatarURL      string    `gorm:"type:text"`
	AvatarPublicID string    `gorm:"type:varchar(255)"`
	Role           string    `gorm:"type:varchar(50);not null;default:'admin'"`
	IsActive       bool      `gorm:"default:true;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (StaffAccountModel) TableName() string {
	return "staff_accounts"
}

// RefreshTokenModel is the database model for the refresh token rotation
// store.
type RefreshTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Token     string     `gorm:"type:varchar(500);not null;unique;index"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	Revoked   bool       `gorm:"default:false;index"`
	RevokedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
