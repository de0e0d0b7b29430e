package models

import (
	"time"

	"github.com/google/uuid"
)

// MenuCategoryModel is the database model for a menu category.
type MenuCategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (MenuCategoryModel) TableName() string {
	return "menu_categories"
}

// MenuItemModel is the database model for a menu item.
type MenuItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null"`
	Price        float64   `gorm:"not null"`
	Image        *string   `gorm:"type:text"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Type         string    `gorm:"type:varchar(100);not null"`
	Size         string    `gorm:"type:varchar(100);not null"`
	Availability string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (MenuItemModel) TableName() string {
	return "menu_items"
}
