package menu

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for menu persistence
type Repository interface {
	CreateCategory(ctx context.Context, category *Category) error
	GetCategoryByID(ctx context.Context, categoryID uuid.UUID) (*Category, error)
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error

	CreateItem(ctx context.Context, item *Item) error
	GetItemByID(ctx context.Context, itemID uuid.UUID) (*Item, error)
	ListItems(ctx context.Context) ([]*Item, error)
	UpdateItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}
