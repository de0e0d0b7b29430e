package menu

import (
	"context"
	"errors"
	"fmt"

	domainMenu "github.com/AyushiSrivastava11/VRV-Backend/internal/domain/menu"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/logger"
	appErrors "github.com/AyushiSrivastava11/VRV-Backend/pkg/errors"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements menu category and item management. Writes are
// admin-gated at the transport layer; reads are public.
type Service struct {
	menuRepo domainMenu.Repository
}

func NewService(menuRepo domainMenu.Repository) *Service {
	return &Service{menuRepo: menuRepo}
}

func (s *Service) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*domainMenu.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	name := utils.SanitizeString(req.Name)
	if _, err := s.menuRepo.GetCategoryByName(ctx, name); err == nil {
		return nil, appErrors.ErrCategoryExists
	} else if !errors.Is(err, domainMenu.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category := &domainMenu.Category{Name: name}
	if err := s.menuRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, domainMenu.ErrCategoryExists) {
			return nil, appErrors.ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
		zap.String("event", "category_created"),
	)

	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req *UpdateCategoryRequest) (*domainMenu.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	category, err := s.menuRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainMenu.ErrCategoryNotFound) {
			return nil, appErrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	name := utils.SanitizeString(req.Name)
	if existing, err := s.menuRepo.GetCategoryByName(ctx, name); err == nil && existing.ID != categoryID {
		return nil, appErrors.ErrCategoryExists
	} else if err != nil && !errors.Is(err, domainMenu.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category.Name = name
	if err := s.menuRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, domainMenu.ErrCategoryExists) {
			return nil, appErrors.ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	if err := s.menuRepo.DeleteCategory(ctx, categoryID); err != nil {
		if errors.Is(err, domainMenu.ErrCategoryNotFound) {
			return appErrors.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	logger.Info("Category deleted",
		zap.String("category_id", categoryID.String()),
		zap.String("event", "category_deleted"),
	)
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*domainMenu.Category, error) {
	categories, err := s.menuRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *Service) CreateItem(ctx context.Context, req *CreateItemRequest) (*domainMenu.Item, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if _, err := s.menuRepo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, domainMenu.ErrCategoryNotFound) {
			return nil, appErrors.ErrCategoryInvalid
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	item := &domainMenu.Item{
		Name:         utils.SanitizeString(req.Name),
		Description:  utils.SanitizeString(req.Description),
		Price:        req.Price,
		Image:        req.Image,
		CategoryID:   req.CategoryID,
		Type:         utils.SanitizeString(req.Type),
		Size:         utils.SanitizeString(req.Size),
		Availability: utils.SanitizeString(req.Availability),
	}
	if err := s.menuRepo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	logger.Info("Menu item created",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
		zap.String("category_id", item.CategoryID.String()),
		zap.String("event", "menu_item_created"),
	)

	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, itemID uuid.UUID, req *UpdateItemRequest) (*domainMenu.Item, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	item, err := s.menuRepo.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domainMenu.ErrItemNotFound) {
			return nil, appErrors.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	if req.CategoryID != nil {
		if _, err := s.menuRepo.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, domainMenu.ErrCategoryNotFound) {
				return nil, appErrors.ErrCategoryInvalid
			}
			return nil, fmt.Errorf("failed to get category: %w", err)
		}
		item.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		item.Name = utils.SanitizeString(*req.Name)
	}
	if req.Description != nil {
		item.Description = utils.SanitizeString(*req.Description)
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Image != nil {
		item.Image = req.Image
	}
	if req.Type != nil {
		item.Type = utils.SanitizeString(*req.Type)
	}
	if req.Size != nil {
		item.Size = utils.SanitizeString(*req.Size)
	}
	if req.Availability != nil {
		item.Availability = utils.SanitizeString(*req.Availability)
	}

	if err := s.menuRepo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, domainMenu.ErrItemNotFound) {
			return nil, appErrors.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.menuRepo.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, domainMenu.ErrItemNotFound) {
			return appErrors.ErrMenuItemNotFound
		}
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	logger.Info("Menu item deleted",
		zap.String("item_id", itemID.String()),
		zap.String("event", "menu_item_deleted"),
	)
	return nil
}

func (s *Service) ListItems(ctx context.Context) ([]*domainMenu.Item, error) {
	items, err := s.menuRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}
