package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/domain/staff"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/infrastructure/database/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffRepository implements staff.Repository
type StaffRepository struct {
	db *DB
}

// NewStaffRepository creates a new staff account repository
func NewStaffRepository(db *DB) staff.Repository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, a *staff.Account) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()

	dbModel := toStaffModel(a)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "email") {
			return staff.ErrEmailTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	a.ID = dbModel.ID
	a.CreatedAt = dbModel.CreatedAt
	a.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*staff.Account, error) {
	var dbModel models.StaffAccountModel
	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, staff.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return toStaffEntity(&dbModel), nil
}

func (r *StaffRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*staff.Account, error) {
	var dbModel models.StaffAccountModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", accountID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, staff.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return toStaffEntity(&dbModel), nil
}

func (r *StaffRepository) GetAll(ctx context.Context) ([]*staff.Account, error) {
	var dbModels []models.StaffAccountModel
	err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	accounts := make([]*staff.Account, len(dbModels))
	for i, dbModel := range dbModels {
		accounts[i] = toStaffEntity(&dbModel)
	}

	return accounts, nil
}

func (r *StaffRepository) GetAllActive(ctx context.Context) ([]*staff.Account, error) {
	var dbModels []models.StaffAccountModel
	err := r.db.DB.WithContext(ctx).Where("is_active = true").Order("created_at DESC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active accounts: %w", err)
	}

	accounts := make([]*staff.Account, len(dbModels))
	for i, dbModel := range dbModels {
		accounts[i] = toStaffEntity(&dbModel)
	}

	return accounts, nil
}

func (r *StaffRepository) Update(ctx context.Context, a *staff.Account) error {
	a.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&models.StaffAccountModel{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"name":             a.Name,
			"avatar_url":       a.Avatar.URL,
			"avatar_public_id": a.Avatar.PublicID,
			"is_active":        a.IsActive,
			"updated_at":       a.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return staff.ErrAccountNotFound
	}

	return nil
}

func (r *StaffRepository) UpdateRole(ctx context.Context, accountID uuid.UUID, role staff.Role) error {
	result := r.db.DB.WithContext(ctx).Model(&models.StaffAccountModel{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"role":       string(role),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return staff.ErrAccountNotFound
	}

	return nil
}

func (r *StaffRepository) UpdatePassword(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	result := r.db.DB.WithContext(ctx).Model(&models.StaffAccountModel{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"password_hashed": passwordHash,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return staff.ErrAccountNotFound
	}

	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.StaffAccountModel{}, "id = ?", accountID)

	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return staff.ErrAccountNotFound
	}

	return nil
}

func toStaffModel(a *staff.Account) *models.StaffAccountModel {
	return &models.StaffAccountModel{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		PasswordHashed: a.PasswordHashed,
		AvatarURL:      a.Avatar.URL,
		AvatarPublicID: a.Avatar.PublicID,
		Role:           string(a.Role),
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toStaffEntity(m *models.StaffAccountModel) *staff.Account {
	return &staff.Account{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHashed: m.PasswordHashed,
		Avatar: staff.Avatar{
			URL:      m.AvatarURL,
			PublicID: m.AvatarPublicID,
		},
		Role:      staff.Role(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
