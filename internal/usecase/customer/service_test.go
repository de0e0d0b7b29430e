package customer

import (
	"context"
	"errors"
	"os"
	"regexp"
	"testing"
	"time"

	domainCustomer "github.com/AyushiSrivastava11/VRV-Backend/internal/domain/customer"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/logger"
	appErrors "github.com/AyushiSrivastava11/VRV-Backend/pkg/errors"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/token"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init("test"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*domainCustomer.Customer
	orders    map[uuid.UUID][]*domainCustomer.OrderRef
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers: make(map[uuid.UUID]*domainCustomer.Customer),
		orders:    make(map[uuid.UUID][]*domainCustomer.OrderRef),
	}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *domainCustomer.Customer) error {
	for _, existing := range r.customers {
		if existing.Phone == c.Phone {
			return domainCustomer.ErrPhoneTaken
		}
	}
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	copied := *c
	r.customers[c.ID] = &copied
	return nil
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*domainCustomer.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domainCustomer.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*domainCustomer.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domainCustomer.ErrCustomerNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCustomerRepo) SetOTP(_ context.Context, id uuid.UUID, hash string, expiresAt time.Time) error {
	c, ok := r.customers[id]
	if !ok {
		return domainCustomer.ErrCustomerNotFound
	}
	c.OTPHashed = &hash
	c.OTPExpiresAt = &expiresAt
	return nil
}

func (r *fakeCustomerRepo) ClearOTP(_ context.Context, id uuid.UUID) error {
	c, ok := r.customers[id]
	if !ok {
		return domainCustomer.ErrCustomerNotFound
	}
	c.OTPHashed = nil
	c.OTPExpiresAt = nil
	return nil
}

func (r *fakeCustomerRepo) ListOrders(_ context.Context, id uuid.UUID) ([]*domainCustomer.OrderRef, error) {
	return r.orders[id], nil
}

type fakeSMS struct {
	messages []string
	to       []string
	err      error
}

func (s *fakeSMS) Send(_ context.Context, to, body string) error {
	if s.err != nil {
		return s.err
	}
	s.to = append(s.to, to)
	s.messages = append(s.messages, body)
	return nil
}

var codePattern = regexp.MustCompile(`\d{6}`)

func (s *fakeSMS) lastCode(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, s.messages)
	code := codePattern.FindString(s.messages[len(s.messages)-1])
	require.Len(t, code, 6)
	return code
}

func newTestService() (*Service, *fakeCustomerRepo, *fakeSMS) {
	repo := newFakeCustomerRepo()
	sms := &fakeSMS{}
	codec := token.NewCodec(token.Config{CustomerSecret: "customer-secret"})
	return NewService(repo, codec, sms, 10*time.Minute), repo, sms
}

func TestRequestOTP(t *testing.T) {
	svc, repo, sms := newTestService()
	ctx := context.Background()

	resp, err := svc.RequestOTP(ctx, &RequestOTPRequest{Phone: "+15551234567"})
	require.NoError(t, err)
	assert.Equal(t, "+15551234567", resp.Phone)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	require.Len(t, sms.to, 1)
	assert.Equal(t, "+15551234567", sms.to[0])

	cust, err := repo.GetByPhone(ctx, "+15551234567")
	require.NoError(t, err)
	require.NotNil(t, cust.OTPHashed)
	// The stored value is a hash, never the code itself.
	assert.NotEqual(t, sms.lastCode(t), *cust.OTPHashed)
	assert.True(t, utils.CheckOTP(*cust.OTPHashed, sms.lastCode(t)))
	assert.True(t, cust.HasValidOTP())
}

func TestRequestOTPReissueOverwrites(t *testing.T) {
	svc, repo, sms := newTestService()
	ctx := context.Background()

	_, err := svc.RequestOTP(ctx, &RequestOTPRequest{Phone: "+15551234567"})
	require.NoError(t, err)
	first := sms.lastCode(t)

	_, err = svc.RequestOTP(ctx, &RequestOTPRequest{Phone: "+15551234567"})
	require.NoError(t, err)
	second := sms.lastCode(t)

	// Only one row per phone; only the latest code verifies.
	require.Len(t, repo.customers, 1)
	if first != second {
		_, err = svc.VerifyOTP(ctx, &VerifyOTPRequest{Phone: "+15551234567", OTP: first})
		assert.ErrorIs(t, err, appErrors.ErrOTPInvalid)
	}
	_, err = svc.VerifyOTP(ctx, &VerifyOTPRequest{Phone: "+15551234567", OTP: second})
	assert.NoError(t, err)
}

func TestRequestOTPSMSFailure(t *testing.T) {
	svc, repo, sms := newTestService()
	sms.err = errors.New("carrier unavailable")

	_, err := svc.RequestOTP(context.Background(), &RequestOTPRequest{Phone: "+15551234567"})
	assert.ErrorIs(t, err, appErrors.ErrSMSDelivery)
	assert.Empty(t, repo.customers)
}

func TestRequestOTPInvalidPhone(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RequestOTP(context.Background(), &RequestOTPRequest{Phone: "not-a-phone"})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestVerifyOTP(t *testing.T) {
	svc, repo, sms := newTestService()
	ctx := context.Background()

	_, err := svc.RequestOTP(ctx, &RequestOTPRequest{Phone: "+15551234567"})
	require.NoError(t, err)
	code := sms.lastCode(t)

	auth, err := svc.VerifyOTP(ctx, &VerifyOTPRequest{Phone: "+15551234567", OTP: code})
	require.NoError(t, err)
	assert.Equal(t, "+15551234567", auth.Customer.Phone)
	assert.NotEmpty(t, auth.Token)

	customerID, phone, err := token.NewCodec(token.Config{CustomerSecret: "customer-secret"}).VerifyCustomerToken(auth.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.Customer.ID, customerID)
	assert.Equal(t, "+15551234567", phone)

	// The code is consumed on first use.
	cust, err := repo.GetByPhone(ctx, "+15551234567")
	require.NoError(t, err)
	assert.Nil(t, cust.OTPHashed)
	assert.Nil(t, cust.OTPExpiresAt)

	_, err = svc.VerifyOTP(ctx, &VerifyOTPRequest{Phone: "+15551234567", OTP: code})
	assert.ErrorIs(t, err, appErrors.ErrOTPInvalid)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, _, sms := newTestService()
	ctx := context.Background()

	_, err := svc.RequestOTP(ctx, &RequestOTPRequest{Phone: "+15551234567"})
	require.NoError(t, err)

	wrong := "000000"
	if wrong == sms.lastCode(t) {
		wrong = "000001"
	}
	_, err = svc.VerifyOTP(ctx, &VerifyOTPRequest{Phone: "+15551234567", OTP: wrong})
	assert.ErrorIs(t, err, appErrors.ErrOTPInvalid)
}

func TestVerifyOTPExpired(t *testing.T) {
	repo := newFakeCustomerRepo()
	sms := &fakeSMS{}
	codec := token.NewCodec(token.Config{CustomerSecret: "customer-secret"})
	svc := NewService(repo, codec, sms, time.Nanosecond)
	ctx := context.Background()

	_, err := svc.RequestOTP(ctx, &RequestOTPRequest{Phone: "+15551234567"})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	_, err = svc.VerifyOTP(ctx, &VerifyOTPRequest{Phone: "+15551234567", OTP: sms.lastCode(t)})
	assert.ErrorIs(t, err, appErrors.ErrOTPInvalid)
}

func TestVerifyOTPUnknownPhone(t *testing.T) {
	svc, _, _ := newTestService()

	// A phone that never requested a code is a missing customer, not a bad code.
	_, err := svc.VerifyOTP(context.Background(), &VerifyOTPRequest{Phone: "+15551234567", OTP: "123456"})
	assert.ErrorIs(t, err, appErrors.ErrCustomerNotFound)
}

func TestListOrders(t *testing.T) {
	svc, repo, sms := newTestService()
	ctx := context.Background()

	_, err := svc.RequestOTP(ctx, &RequestOTPRequest{Phone: "+15551234567"})
	require.NoError(t, err)
	auth, err := svc.VerifyOTP(ctx, &VerifyOTPRequest{Phone: "+15551234567", OTP: sms.lastCode(t)})
	require.NoError(t, err)

	repo.orders[auth.Customer.ID] = []*domainCustomer.OrderRef{
		{ID: uuid.New(), CustomerID: auth.Customer.ID, Reference: "ORD-1001", CreatedAt: time.Now()},
		{ID: uuid.New(), CustomerID: auth.Customer.ID, Reference: "ORD-1002", CreatedAt: time.Now()},
	}

	orders, err := svc.ListOrders(ctx, auth.Customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-1001", orders[0].Reference)

	_, err = svc.ListOrders(ctx, uuid.New())
	assert.ErrorIs(t, err, appErrors.ErrCustomerNotFound)
}
