package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/domain/customer"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/infrastructure/database/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRepository implements customer.Repository
type CustomerRepository struct {
	db *DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *DB) customer.Repository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	dbModel := toCustomerModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "phone") {
			return customer.ErrPhoneTaken
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}

	c.ID = dbModel.ID
	c.CreatedAt = dbModel.CreatedAt
	c.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	var dbModel models.CustomerModel
	err := r.db.DB.WithContext(ctx).Where("phone = ?", phone).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, customer.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return toCustomerEntity(&dbModel), nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, customerID uuid.UUID) (*customer.Customer, error) {
	var dbModel models.CustomerModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", customerID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, customer.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return toCustomerEntity(&dbModel), nil
}

func (r *CustomerRepository) SetOTP(ctx context.Context, customerID uuid.UUID, otpHash string, expiresAt time.Time) error {
	result := r.db.DB.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("id = ?", customerID).
		Updates(map[string]interface{}{
			"otp_hashed":     otpHash,
			"otp_expires_at": expiresAt,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set OTP: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

func (r *CustomerRepository) ClearOTP(ctx context.Context, customerID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("id = ?", customerID).
		Updates(map[string]interface{}{
			"otp_hashed":     nil,
			"otp_expires_at": nil,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to clear OTP: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

func (r *CustomerRepository) ListOrders(ctx context.Context, customerID uuid.UUID) ([]*customer.OrderRef, error) {
	var dbModels []models.OrderRefModel
	err := r.db.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&dbModels).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*customer.OrderRef, len(dbModels))
	for i, dbModel := range dbModels {
		orders[i] = &customer.OrderRef{
			ID:         dbModel.ID,
			CustomerID: dbModel.CustomerID,
			Reference:  dbModel.Reference,
			CreatedAt:  dbModel.CreatedAt,
		}
	}

	return orders, nil
}

func toCustomerModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:           c.ID,
		Phone:        c.Phone,
		OTPHashed:    c.OTPHashed,
		OTPExpiresAt: c.OTPExpiresAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCustomerEntity(m *models.CustomerModel) *customer.Customer {
	return &customer.Customer{
		ID:           m.ID,
		Phone:        m.Phone,
		OTPHashed:    m.OTPHashed,
		OTPExpiresAt: m.OTPExpiresAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
