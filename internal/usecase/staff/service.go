package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainStaff "github.com/AyushiSrivastava11/VRV-Backend/internal/domain/staff"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/logger"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/notification"
	appErrors "github.com/AyushiSrivastava11/VRV-Backend/pkg/errors"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/token"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const activationMailSubject = "Account Activation"

// Service implements staff account use cases
type Service struct {
	accountRepo      domainStaff.Repository
	refreshTokenRepo domainStaff.RefreshTokenRepository
	codec            *token.Codec
	mailer           notification.Mailer
}

// NewService creates a new staff service
func NewService(
	accountRepo domainStaff.Repository,
	refreshTokenRepo domainStaff.RefreshTokenRepository,
	codec *token.Codec,
	mailer notification.Mailer,
) *Service {
	return &Service{
		accountRepo:      accountRepo,
		refreshTokenRepo: refreshTokenRepo,
		codec:            codec,
		mailer:           mailer,
	}
}

// Register validates the payload, issues an activation token carrying the
// pending account and emails the 6-digit code. Nothing is persisted until
// the code round-trips through Activate.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	role := domainStaff.Role(req.Role)
	if req.Role == "" {
		role = domainStaff.DefaultRole
	}

	existing, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainStaff.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", req.Email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, appErrors.ErrEmailTaken
	}

	pending := token.PendingAccount{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role.String(),
	}

	activationToken, code, err := s.codec.IssueActivationToken(pending)
	if err != nil {
		return nil, fmt.Errorf("failed to issue activation token: %w", err)
	}

	mail := notification.Mail{
		To:       req.Email,
		Subject:  activationMailSubject,
		Template: "activation_mail.html",
		Data: map[string]string{
			"Name": req.Name,
			"Code": code,
		},
	}
	if err := s.mailer.Send(ctx, mail); err != nil {
		logger.Error("Failed to send activation mail",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return nil, appErrors.ErrMailDelivery
	}

	logger.Info("Activation mail sent",
		zap.String("email", req.Email),
		zap.String("role", role.String()),
		zap.String("event", "activation_mail_sent"),
	)

	return &RegisterResponse{
		ActivationToken: activationToken,
		Email:           req.Email,
	}, nil
}

// Activate verifies the activation token and code and persists the account.
// The store's unique email index is the final arbiter for duplicate races.
func (s *Service) Activate(ctx context.Context, req *ActivateRequest) (*AccountResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	pending, err := s.codec.VerifyActivationToken(req.ActivationToken, req.ActivationCode)
	if err != nil {
		if errors.Is(err, token.ErrCodeMismatch) {
			logger.Warn("Activation attempt with wrong code",
				zap.String("event", "activation_failed_code_mismatch"),
			)
			return nil, appErrors.ErrActivationCodeMismatch
		}
		return nil, appErrors.ErrActivationTokenInvalid
	}

	existing, err := s.accountRepo.GetByEmail(ctx, pending.Email)
	if err != nil && !errors.Is(err, domainStaff.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, appErrors.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(pending.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domainStaff.Account{
		Name:           pending.Name,
		Email:          pending.Email,
		PasswordHashed: hashedPassword,
		Role:           domainStaff.Role(pending.Role),
		IsActive:       true,
	}
	if !account.Role.Valid() {
		account.Role = domainStaff.DefaultRole
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainStaff.ErrEmailTaken) {
			return nil, appErrors.ErrEmailTaken
		}
		return nil, err
	}

	logger.Info("Account activated",
		zap.String("account_id", account.ID.String()),
		zap.String("email", account.Email),
		zap.String("role", account.Role.String()),
		zap.String("event", "account_activated"),
	)

	return ToAccountResponse(account), nil
}

// Login verifies credentials and issues a fresh session pair. The refresh
// token is written to the rotation store before the response leaves.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainStaff.ErrAccountNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "login_failed_unknown_email"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.IsActive {
		logger.Warn("Login attempt for inactive account",
			zap.String("account_id", account.ID.String()),
			zap.String("event", "login_failed_inactive_account"),
		)
		return nil, appErrors.ErrAccountInactive
	}

	if !utils.CheckPassword(account.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("account_id", account.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	pair, err := s.issueSession(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("Login successful",
		zap.String("account_id", account.ID.String()),
		zap.String("role", account.Role.String()),
		zap.String("event", "login_success"),
	)

	return &AuthResponse{
		User:         ToAccountResponse(account),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}, nil
}

// Refresh rotates a refresh token: the presented token must verify, exist in
// the store unrevoked, and belong to a live account. The old row is revoked
// before a new pair is issued, so a rotated token cannot be replayed.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*token.TokenPair, error) {
	accountID, err := s.codec.VerifyRefreshToken(refreshToken)
	if err != nil {
		logger.Warn("Token refresh attempt with invalid token",
			zap.String("event", "token_refresh_failed_invalid_token"),
		)
		return nil, appErrors.ErrInvalidToken
	}

	dbToken, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		logger.Warn("Token refresh attempt with revoked or unknown token",
			zap.String("account_id", accountID.String()),
			zap.String("event", "token_refresh_failed_token_not_found"),
		)
		return nil, appErrors.ErrInvalidToken
	}

	if dbToken.AccountID != accountID {
		logger.Warn("Token refresh attempt with mismatched account",
			zap.String("token_account_id", dbToken.AccountID.String()),
			zap.String("claim_account_id", accountID.String()),
			zap.String("event", "token_refresh_failed_account_mismatch"),
		)
		return nil, appErrors.ErrInvalidToken
	}

	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, appErrors.ErrAccountNotFound
	}

	if err := s.refreshTokenRepo.Revoke(ctx, dbToken.ID); err != nil {
		logger.Error("Failed to revoke rotated refresh token",
			zap.String("token_id", dbToken.ID.String()),
			zap.Error(err),
		)
	}

	pair, err := s.issueSession(ctx, accountID)
	if err != nil {
		return nil, err
	}

	logger.Debug("Token refreshed",
		zap.String("account_id", accountID.String()),
		zap.String("old_token_id", dbToken.ID.String()),
		zap.String("event", "token_refresh_success"),
	)

	return pair, nil
}

// Logout revokes the presented refresh token if the store still knows it.
// An already-rotated or garbage token is not an error here; the cookies are
// cleared either way.
func (s *Service) Logout(ctx context.Context, accountID uuid.UUID, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	dbToken, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil
	}
	if dbToken.AccountID != accountID {
		return nil
	}

	if err := s.refreshTokenRepo.Revoke(ctx, dbToken.ID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	logger.Info("Logged out",
		zap.String("account_id", accountID.String()),
		zap.String("event", "logout"),
	)

	return nil
}

func (s *Service) GetAccount(ctx context.Context, accountID uuid.UUID) (*AccountResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainStaff.ErrAccountNotFound) {
			return nil, appErrors.ErrAccountNotFound
		}
		return nil, err
	}

	return ToAccountResponse(account), nil
}

func (s *Service) UpdateInfo(ctx context.Context, accountID uuid.UUID, req *UpdateInfoRequest) (*AccountResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainStaff.ErrAccountNotFound) {
			return nil, appErrors.ErrAccountNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Avatar != nil {
		account.Avatar = domainStaff.Avatar{
			URL:      req.Avatar.URL,
			PublicID: req.Avatar.PublicID,
		}
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return ToAccountResponse(account), nil
}

func (s *Service) ChangePassword(ctx context.Context, accountID uuid.UUID, req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainStaff.ErrAccountNotFound) {
			return appErrors.ErrAccountNotFound
		}
		return err
	}

	if !utils.CheckPassword(account.PasswordHashed, req.CurrentPassword) {
		logger.Warn("Password change attempt with wrong current password",
			zap.String("account_id", account.ID.String()),
			zap.String("event", "password_change_failed"),
		)
		return appErrors.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.accountRepo.UpdatePassword(ctx, accountID, hashedPassword); err != nil {
		return err
	}

	logger.Info("Password changed",
		zap.String("account_id", account.ID.String()),
		zap.String("event", "password_change_success"),
	)

	return nil
}

func (s *Service) UpdateRole(ctx context.Context, req *UpdateRoleRequest) (*AccountResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := s.accountRepo.UpdateRole(ctx, req.ID, domainStaff.Role(req.Role)); err != nil {
		if errors.Is(err, domainStaff.ErrAccountNotFound) {
			return nil, appErrors.ErrAccountNotFound
		}
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("Role updated",
		zap.String("account_id", req.ID.String()),
		zap.String("role", req.Role),
		zap.String("event", "role_updated"),
	)

	return ToAccountResponse(account), nil
}

func (s *Service) Delete(ctx context.Context, accountID uuid.UUID) error {
	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		if errors.Is(err, domainStaff.ErrAccountNotFound) {
			return appErrors.ErrAccountNotFound
		}
		return err
	}

	// Outstanding sessions die with the account.
	if err := s.refreshTokenRepo.RevokeAllForAccount(ctx, accountID); err != nil {
		logger.Error("Failed to revoke tokens for deleted account",
			zap.String("account_id", accountID.String()),
			zap.Error(err),
		)
	}

	logger.Info("Account deleted",
		zap.String("account_id", accountID.String()),
		zap.String("event", "account_deleted"),
	)

	return nil
}

func (s *Service) GetAll(ctx context.Context) ([]*AccountResponse, error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = ToAccountResponse(account)
	}

	return responses, nil
}

func (s *Service) GetAllActive(ctx context.Context) ([]*AccountResponse, error) {
	accounts, err := s.accountRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = ToAccountResponse(account)
	}

	return responses, nil
}

func (s *Service) issueSession(ctx context.Context, accountID uuid.UUID) (*token.TokenPair, error) {
	pair, err := s.codec.IssueSessionPair(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session tokens: %w", err)
	}

	refreshToken := &domainStaff.RefreshToken{
		AccountID: accountID,
		Token:     pair.RefreshToken,
		ExpiresAt: time.Now().Add(s.codec.RefreshTTL()),
	}
	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return pair, nil
}
