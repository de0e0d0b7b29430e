package staff

import (
	"time"

	domainStaff "github.com/AyushiSrivastava11/VRV-Backend/internal/domain/staff"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/token"
	"github.com/google/uuid"
)

// RegisterRequest is the superset registration payload. Role is optional;
// when present it must belong to the staff role enumeration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,staff_role"`
}

type RegisterResponse struct {
	ActivationToken string `json:"activation_token"`
	Email           string `json:"email"`
}

type ActivateRequest struct {
	ActivationToken string `json:"activation_token" validate:"required"`
	ActivationCode  string `json:"activation_code" validate:"required,len=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateInfoRequest struct {
	Name   *string        `json:"name" validate:"omitempty,max=255"`
	Avatar *AvatarPayload `json:"avatar"`
}

type AvatarPayload struct {
	URL      string `json:"url" validate:"required,url"`
	PublicID string `json:"public_id"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type UpdateRoleRequest struct {
	ID   uuid.UUID `json:"id" validate:"required"`
	Role string    `json:"role" validate:"required,staff_role"`
}

type AccountResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Avatar    domainStaff.Avatar `json:"avatar"`
	Role      string             `json:"role"`
	IsActive  bool               `json:"is_active"`
	CreatedAt time.Time          `json:"created_at"`
}

type AuthResponse struct {
	User         *AccountResponse `json:"user"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"-"`
	ExpiresAt    int64            `json:"expires_at"`
}

// Pair returns the underlying token pair so the handler can set cookies.
func (a *AuthResponse) Pair() *token.TokenPair {
	return &token.TokenPair{
		AccessToken:  a.AccessToken,
		RefreshToken: a.RefreshToken,
		ExpiresAt:    a.ExpiresAt,
	}
}

func ToAccountResponse(a *domainStaff.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Avatar:    a.Avatar,
		Role:      a.Role.String(),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}
