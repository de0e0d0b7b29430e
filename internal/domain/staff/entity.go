package staff

import (
	"time"

	"github.com/google/uuid"
)

// Role is the staff role assigned to an account. Roles form a fixed
// enumeration; anything outside it is rejected at validation time.
type Role string

const (
	RoleCook     Role = "cook"
	RoleAdmin    Role = "admin"
	RoleAccounts Role = "accounts"
	RoleWaiter   Role = "waiter"
)

// DefaultRole is assigned when a registration omits the role field.
const DefaultRole = RoleAdmin

func (r Role) Valid() bool {
	switch r {
	case RoleCook, RoleAdmin, RoleAccounts, RoleWaiter:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Avatar is an externally hosted profile image.
type Avatar struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Account is a staff identity. The password hash never leaves the server;
// it is excluded from JSON and from response DTOs.
type Account struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHashed string    `json:"-"`
	Avatar         Avatar    `json:"avatar"`
	Role           Role      `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RefreshToken is a persisted refresh credential. A token row is revoked on
// every rotation, which makes replay of a rotated token fail.
type RefreshToken struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	RevokedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

func (rt *RefreshToken) IsActive() bool {
	return !rt.Revoked && !rt.IsExpired()
}
