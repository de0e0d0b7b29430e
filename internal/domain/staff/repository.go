package staff

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for staff account persistence
type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, accountID uuid.UUID) (*Account, error)
	GetAll(ctx context.Context) ([]*Account, error)
	GetAllActive(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, account *Account) error
	UpdateRole(ctx context.Context, accountID uuid.UUID, role Role) error
	UpdatePassword(ctx context.Context, accountID uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// RefreshTokenRepository defines the interface for refresh token rotation state
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, tokenID uuid.UUID) error
	RevokeAllForAccount(ctx context.Context, accountID uuid.UUID) error
	DeleteExpired(ctx context.Context, olderThan time.Duration) error
}
