package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/domain/customer"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/domain/staff"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/logger"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init("test"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type stubStaffRepo struct {
	account *staff.Account
}

func (r *stubStaffRepo) Create(context.Context, *staff.Account) error { return nil }

func (r *stubStaffRepo) GetByEmail(context.Context, string) (*staff.Account, error) {
	return nil, staff.ErrAccountNotFound
}

func (r *stubStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*staff.Account, error) {
	if r.account != nil && r.account.ID == id {
		return r.account, nil
	}
	return nil, staff.ErrAccountNotFound
}

func (r *stubStaffRepo) GetAll(context.Context) ([]*staff.Account, error)       { return nil, nil }
func (r *stubStaffRepo) GetAllActive(context.Context) ([]*staff.Account, error) { return nil, nil }
func (r *stubStaffRepo) Update(context.Context, *staff.Account) error           { return nil }
func (r *stubStaffRepo) UpdateRole(context.Context, uuid.UUID, staff.Role) error {
	return nil
}
func (r *stubStaffRepo) UpdatePassword(context.Context, uuid.UUID, string) error { return nil }
func (r *stubStaffRepo) Delete(context.Context, uuid.UUID) error                 { return nil }

type stubCustomerRepo struct {
	customer *customer.Customer
}

func (r *stubCustomerRepo) Create(context.Context, *customer.Customer) error { return nil }

func (r *stubCustomerRepo) GetByPhone(context.Context, string) (*customer.Customer, error) {
	return nil, customer.ErrCustomerNotFound
}

func (r *stubCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	if r.customer != nil && r.customer.ID == id {
		return r.customer, nil
	}
	return nil, customer.ErrCustomerNotFound
}

func (r *stubCustomerRepo) SetOTP(context.Context, uuid.UUID, string, time.Time) error {
	return nil
}
func (r *stubCustomerRepo) ClearOTP(context.Context, uuid.UUID) error { return nil }
func (r *stubCustomerRepo) ListOrders(context.Context, uuid.UUID) ([]*customer.OrderRef, error) {
	return nil, nil
}

func testCodec() *token.Codec {
	return token.NewCodec(token.Config{
		ActivationSecret: "activation-secret",
		AccessSecret:     "access-secret",
		RefreshSecret:    "refresh-secret",
		CustomerSecret:   "customer-secret",
	})
}

func newAuthRouter(codec *token.Codec, repo staff.Repository, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(codec, repo)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		account := Principal(c)
		if account == nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": account.Email})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddlewareCookie(t *testing.T) {
	codec := testCodec()
	account := &staff.Account{ID: uuid.New(), Email: "a@x.com", Role: staff.RoleAdmin, IsActive: true}
	router := newAuthRouter(codec, &stubStaffRepo{account: account})

	pair, err := codec.IssueSessionPair(account.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.AccessToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestAuthMiddlewareBearerFallback(t *testing.T) {
	codec := testCodec()
	account := &staff.Account{ID: uuid.New(), Email: "a@x.com", Role: staff.RoleCook, IsActive: true}
	router := newAuthRouter(codec, &stubStaffRepo{account: account})

	pair, err := codec.IssueSessionPair(account.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router := newAuthRouter(testCodec(), &stubStaffRepo{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Login first to access this resource")
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	router := newAuthRouter(testCodec(), &stubStaffRepo{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "garbage"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddlewareRefreshTokenRejected(t *testing.T) {
	codec := testCodec()
	account := &staff.Account{ID: uuid.New(), Email: "a@x.com", Role: staff.RoleAdmin}
	router := newAuthRouter(codec, &stubStaffRepo{account: account})

	pair, err := codec.IssueSessionPair(account.ID)
	require.NoError(t, err)

	// A refresh token must not pass as an access token.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.RefreshToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareDeletedAccount(t *testing.T) {
	codec := testCodec()
	router := newAuthRouter(codec, &stubStaffRepo{})

	pair, err := codec.IssueSessionPair(uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.AccessToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestRoleMiddleware(t *testing.T) {
	codec := testCodec()

	tests := []struct {
		name     string
		role     staff.Role
		expected int
	}{
		{"admin allowed", staff.RoleAdmin, http.StatusOK},
		{"waiter denied", staff.RoleWaiter, http.StatusForbidden},
		{"cook denied", staff.RoleCook, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &staff.Account{ID: uuid.New(), Email: "a@x.com", Role: tt.role, IsActive: true}
			router := newAuthRouter(codec, &stubStaffRepo{account: account}, AdminOnly())

			pair, err := codec.IssueSessionPair(account.ID)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.AccessToken})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
			if tt.expected == http.StatusForbidden {
				assert.Contains(t, w.Body.String(),
					"Role ("+tt.role.String()+") is not allowed to access this resource")
			}
		})
	}
}

func TestRoleMiddlewareWithoutAuth(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCustomerAuthMiddleware(t *testing.T) {
	codec := testCodec()
	cust := &customer.Customer{ID: uuid.New(), Phone: "+15551234567"}
	repo := &stubCustomerRepo{customer: cust}

	r := gin.New()
	r.GET("/orders", CustomerAuthMiddleware(codec, repo), func(c *gin.Context) {
		principal := CustomerPrincipal(c)
		require.NotNil(t, principal)
		c.JSON(http.StatusOK, gin.H{"phone": principal.Phone})
	})

	signed, err := codec.IssueCustomerToken(cust.ID, cust.Phone)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: CustomerTokenCookie, Value: signed})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "+15551234567")

	// A staff access token must not authenticate a customer route.
	pair, err := codec.IssueSessionPair(cust.ID)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: CustomerTokenCookie, Value: pair.AccessToken})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
