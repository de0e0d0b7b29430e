package menu

import (
	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type CreateItemRequest struct {
	Name         string    `json:"name" validate:"required,min=2,max=100"`
	Description  string    `json:"description" validate:"max=1000"`
	Price        float64   `json:"price" validate:"required,gt=0"`
	Image        *string   `json:"image,omitempty" validate:"omitempty,url"`
	CategoryID   uuid.UUID `json:"category_id" validate:"required"`
	Type         string    `json:"type" validate:"max=50"`
	Size         string    `json:"size" validate:"max=50"`
	Availability string    `json:"availability" validate:"max=50"`
}

type UpdateItemRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description  *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price        *float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	Image        *string    `json:"image,omitempty" validate:"omitempty,url"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	Type         *string    `json:"type,omitempty" validate:"omitempty,max=50"`
	Size         *string    `json:"size,omitempty" validate:"omitempty,max=50"`
	Availability *string    `json:"availability,omitempty" validate:"omitempty,max=50"`
}
