package token

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrCodeMismatch = errors.New("activation code mismatch")
)

const (
	defaultActivationTTL = 10 * time.Minute
	defaultAccessTTL     = 15 * time.Minute
	defaultRefreshTTL    = 7 * 24 * time.Hour
	defaultCustomerTTL   = 24 * time.Hour
)

// Config carries the signing secrets and lifetimes for every token kind.
// Each kind is signed with its own secret so a token of one kind never
// verifies as another.
type Config struct {
	ActivationSecret string
	ActivationTTL    time.Duration

	AccessSecret string
	AccessTTL    time.Duration

	RefreshSecret string
	RefreshTTL    time.Duration

	CustomerSecret string
	CustomerTTL    time.Duration
}

// Codec creates and verifies signed, time-limited tokens. It holds no
// per-request state and is safe for concurrent use.
type Codec struct {
	cfg Config
}

func NewCodec(cfg Config) *Codec {
	if cfg.ActivationTTL == 0 {
		cfg.ActivationTTL = defaultActivationTTL
	}
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = defaultAccessTTL
	}
	if cfg.RefreshTTL == 0 {
		cfg.RefreshTTL = defaultRefreshTTL
	}
	if cfg.CustomerTTL == 0 {
		cfg.CustomerTTL = defaultCustomerTTL
	}
	return &Codec{cfg: cfg}
}

// RefreshTTL exposes the refresh lifetime so the rotation store can stamp
// row expiry consistently with the token claims.
func (c *Codec) RefreshTTL() time.Duration {
	return c.cfg.RefreshTTL
}

// AccessTTL exposes the access lifetime so cookie max-age matches the claims.
func (c *Codec) AccessTTL() time.Duration {
	return c.cfg.AccessTTL
}

// CustomerTTL exposes the customer session lifetime for response payloads.
func (c *Codec) CustomerTTL() time.Duration {
	return c.cfg.CustomerTTL
}

// PendingAccount is the registration payload embedded in an activation
// token. The account does not exist anywhere else until activation
// succeeds; validity is delegated entirely to the signature and embedded
// expiry.
type PendingAccount struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type activationClaims struct {
	Account PendingAccount `json:"account"`
	Code    string         `json:"code"`
	jwt.RegisteredClaims
}

type customerClaims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

// TokenPair is an access/refresh token set for one account.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// GenerateCode returns a random 6-digit decimal code, uniform in
// [100000, 999999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// IssueActivationToken embeds the pending account and a fresh 6-digit code
// into a signed token. The token is round-tripped by the client; the code is
// delivered out-of-band.
func (c *Codec) IssueActivationToken(pending PendingAccount) (string, string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	claims := activationClaims{
		Account: pending,
		Code:    code,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.ActivationTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.cfg.ActivationSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign activation token: %w", err)
	}

	return signed, code, nil
}

// VerifyActivationToken checks signature and expiry, then compares the
// embedded code against the supplied one with an exact string compare.
func (c *Codec) VerifyActivationToken(tokenStr, suppliedCode string) (*PendingAccount, error) {
	var claims activationClaims
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(c.cfg.ActivationSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Code != suppliedCode {
		return nil, ErrCodeMismatch
	}

	return &claims.Account, nil
}

// IssueSessionPair signs an access and a refresh token for the account.
// Both carry only the account id; the principal is re-resolved from the
// store on every request.
func (c *Codec) IssueSessionPair(accountID uuid.UUID) (*TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(c.cfg.AccessTTL)

	access, err := signSubject(accountID.String(), c.cfg.AccessSecret, now, accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := signSubject(accountID.String(), c.cfg.RefreshSecret, now, now.Add(c.cfg.RefreshTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpiry.Unix(),
	}, nil
}

func (c *Codec) VerifyAccessToken(tokenStr string) (uuid.UUID, error) {
	return verifySubject(tokenStr, c.cfg.AccessSecret)
}

func (c *Codec) VerifyRefreshToken(tokenStr string) (uuid.UUID, error) {
	return verifySubject(tokenStr, c.cfg.RefreshSecret)
}

// IssueCustomerToken signs a session token for an OTP-verified customer.
func (c *Codec) IssueCustomerToken(customerID uuid.UUID, phone string) (string, error) {
	now := time.Now()
	claims := customerClaims{
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customerID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.CustomerTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.cfg.CustomerSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign customer token: %w", err)
	}
	return signed, nil
}

func (c *Codec) VerifyCustomerToken(tokenStr string) (uuid.UUID, string, error) {
	var claims customerClaims
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(c.cfg.CustomerSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	customerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}

	return customerID, claims.Phone, nil
}

func signSubject(subject, secret string, now, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func verifySubject(tokenStr, secret string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return id, nil
}
