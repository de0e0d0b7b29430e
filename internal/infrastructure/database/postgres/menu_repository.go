package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/domain/menu"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/infrastructure/database/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuRepository implements menu.Repository
type MenuRepository struct {
	db *DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *DB) menu.Repository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) CreateCategory(ctx context.Context, category *menu.Category) error {
	category.ID = uuid.New()
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	dbModel := toCategoryModel(category)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return menu.ErrCategoryExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	category.ID = dbModel.ID
	return nil
}

func (r *MenuRepository) GetCategoryByID(ctx context.Context, categoryID uuid.UUID) (*menu.Category, error) {
	var dbModel models.MenuCategoryModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", categoryID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, menu.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return toCategoryEntity(&dbModel), nil
}

func (r *MenuRepository) GetCategoryByName(ctx context.Context, name string) (*menu.Category, error) {
	var dbModel models.MenuCategoryModel
	err := r.db.DB.WithContext(ctx).Where("name = ?", name).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, menu.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return toCategoryEntity(&dbModel), nil
}

func (r *MenuRepository) ListCategories(ctx context.Context) ([]*menu.Category, error) {
	var dbModels []models.MenuCategoryModel
	err := r.db.DB.WithContext(ctx).Order("name ASC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*menu.Category, len(dbModels))
	for i, dbModel := range dbModels {
		categories[i] = toCategoryEntity(&dbModel)
	}

	return categories, nil
}

func (r *MenuRepository) UpdateCategory(ctx context.Context, category *menu.Category) error {
	category.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&models.MenuCategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":       category.Name,
			"updated_at": category.UpdatedAt,
		})

	if result.Error != nil {
		if strings.Contains(strings.ToLower(result.Error.Error()), "duplicate key") {
			return menu.ErrCategoryExists
		}
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return menu.ErrCategoryNotFound
	}

	return nil
}

func (r *MenuRepository) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.MenuCategoryModel{}, "id = ?", categoryID)

	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return menu.ErrCategoryNotFound
	}

	return nil
}

func (r *MenuRepository) CreateItem(ctx context.Context, item *menu.Item) error {
	item.ID = uuid.New()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	dbModel := toItemModel(item)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	item.ID = dbModel.ID
	return nil
}

func (r *MenuRepository) GetItemByID(ctx context.Context, itemID uuid.UUID) (*menu.Item, error) {
	var dbModel models.MenuItemModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", itemID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, menu.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return toItemEntity(&dbModel), nil
}

func (r *MenuRepository) ListItems(ctx context.Context) ([]*menu.Item, error) {
	var dbModels []models.MenuItemModel
	err := r.db.DB.WithContext(ctx).Order("name ASC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	items := make([]*menu.Item, len(dbModels))
	for i, dbModel := range dbModels {
		items[i] = toItemEntity(&dbModel)
	}

	return items, nil
}

func (r *MenuRepository) UpdateItem(ctx context.Context, item *menu.Item) error {
	item.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&models.MenuItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":         item.Name,
			"description":  item.Description,
			"price":        item.Price,
			"image":        item.Image,
			"category_id":  item.CategoryID,
			"type":         item.Type,
			"size":         item.Size,
			"availability": item.Availability,
			"updated_at":   item.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return menu.ErrItemNotFound
	}

	return nil
}

func (r *MenuRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.MenuItemModel{}, "id = ?", itemID)

	if result.Error != nil {
		return fmt.Errorf("failed to delete menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return menu.ErrItemNotFound
	}

	return nil
}

func toCategoryModel(c *menu.Category) *models.MenuCategoryModel {
	return &models.MenuCategoryModel{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCategoryEntity(m *models.MenuCategoryModel) *menu.Category {
	return &menu.Category{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toItemModel(i *menu.Item) *models.MenuItemModel {
	return &models.MenuItemModel{
		ID:           i.ID,
		Name:         i.Name,
		Description:  i.Description,
		Price:        i.Price,
		Image:        i.Image,
		CategoryID:   i.CategoryID,
		Type:         i.Type,
		Size:         i.Size,
		Availability: i.Availability,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func toItemEntity(m *models.MenuItemModel) *menu.Item {
	return &menu.Item{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Image:        m.Image,
		CategoryID:   m.CategoryID,
		Type:         m.Type,
		Size:         m.Size,
		Availability: m.Availability,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
