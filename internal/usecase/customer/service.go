package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainCustomer "github.com/AyushiSrivastava11/VRV-Backend/internal/domain/customer"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/logger"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/notification"
	appErrors "github.com/AyushiSrivastava11/VRV-Backend/pkg/errors"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/token"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements customer OTP authentication. Customers never hold
// passwords; a short-lived one-time code delivered over SMS is the only
// credential, and a verified code is consumed on first use.
type Service struct {
	customerRepo domainCustomer.Repository
	codec        *token.Codec
	sms          notification.SMSSender
	otpTTL       time.Duration
}

func NewService(
	customerRepo domainCustomer.Repository,
	codec *token.Codec,
	sms notification.SMSSender,
	otpTTL time.Duration,
) *Service {
	if otpTTL <= 0 {
		otpTTL = 10 * time.Minute
	}
	return &Service{
		customerRepo: customerRepo,
		codec:        codec,
		sms:          sms,
		otpTTL:       otpTTL,
	}
}

// RequestOTP generates a fresh 6-digit code, delivers it over SMS and only
// then stores the bcrypt hash with its expiry. A delivery failure leaves the
// customer row untouched so a stale code cannot linger.
func (s *Service) RequestOTP(ctx context.Context, req *RequestOTPRequest) (*RequestOTPResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid phone number", err)
	}
	phone := utils.SanitizePhone(req.Phone)

	code, err := token.GenerateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := s.sms.Send(ctx, phone, fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(s.otpTTL.Minutes()))); err != nil {
		logger.Error("Failed to send OTP SMS",
			zap.String("phone", phone),
			zap.Error(err),
		)
		return nil, appErrors.ErrSMSDelivery
	}

	otpHash, err := utils.HashOTP(code)
	if err != nil {
		return nil, fmt.Errorf("failed to hash OTP: %w", err)
	}
	expiresAt := time.Now().Add(s.otpTTL)

	cust, err := s.customerRepo.GetByPhone(ctx, phone)
	switch {
	case err == nil:
		if err := s.customerRepo.SetOTP(ctx, cust.ID, otpHash, expiresAt); err != nil {
			return nil, fmt.Errorf("failed to store OTP: %w", err)
		}
	case errors.Is(err, domainCustomer.ErrCustomerNotFound):
		cust = &domainCustomer.Customer{
			Phone:        phone,
			OTPHashed:    &otpHash,
			OTPExpiresAt: &expiresAt,
		}
		if err := s.customerRepo.Create(ctx, cust); err != nil {
			// Lost a creation race; the winner's row takes the code.
			if errors.Is(err, domainCustomer.ErrPhoneTaken) {
				existing, getErr := s.customerRepo.GetByPhone(ctx, phone)
				if getErr != nil {
					return nil, fmt.Errorf("failed to resolve customer: %w", getErr)
				}
				if err := s.customerRepo.SetOTP(ctx, existing.ID, otpHash, expiresAt); err != nil {
					return nil, fmt.Errorf("failed to store OTP: %w", err)
				}
			} else {
				return nil, fmt.Errorf("failed to create customer: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	logger.Info("OTP issued",
		zap.String("phone", phone),
		zap.Time("expires_at", expiresAt),
		zap.String("event", "otp_issued"),
	)

	return &RequestOTPResponse{Phone: phone, ExpiresAt: expiresAt}, nil
}

// VerifyOTP checks the supplied code against the stored hash and, on match,
// clears it and issues a customer session token. A code verifies at most once.
func (s *Service) VerifyOTP(ctx context.Context, req *VerifyOTPRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	phone := utils.SanitizePhone(req.Phone)

	cust, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domainCustomer.ErrCustomerNotFound) {
			return nil, appErrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	if !cust.HasValidOTP() {
		logger.Warn("OTP verification with no active code",
			zap.String("phone", phone),
			zap.String("event", "otp_verify_failed_no_code"),
		)
		return nil, appErrors.ErrOTPInvalid
	}

	if !utils.CheckOTP(*cust.OTPHashed, req.OTP) {
		logger.Warn("OTP verification with wrong code",
			zap.String("phone", phone),
			zap.String("event", "otp_verify_failed_mismatch"),
		)
		return nil, appErrors.ErrOTPInvalid
	}

	if err := s.customerRepo.ClearOTP(ctx, cust.ID); err != nil {
		return nil, fmt.Errorf("failed to clear OTP: %w", err)
	}

	signed, err := s.codec.IssueCustomerToken(cust.ID, cust.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to issue customer token: %w", err)
	}

	logger.Info("Customer authenticated",
		zap.String("customer_id", cust.ID.String()),
		zap.String("event", "otp_verify_success"),
	)

	return &AuthResponse{
		Customer:  ToCustomerResponse(cust),
		Token:     signed,
		ExpiresAt: time.Now().Add(s.codec.CustomerTTL()).Unix(),
	}, nil
}

// ListOrders returns the authenticated customer's order references.
func (s *Service) ListOrders(ctx context.Context, customerID uuid.UUID) ([]*OrderResponse, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, domainCustomer.ErrCustomerNotFound) {
			return nil, appErrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	orders, err := s.customerRepo.ListOrders(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderResponse(o))
	}
	return out, nil
}
