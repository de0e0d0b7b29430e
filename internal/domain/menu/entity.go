package menu

import (
	"time"

	"github.com/google/uuid"
)

// Category groups menu items. Names are unique.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is a single dish or drink on the menu. CategoryID must reference an
// existing category.
type Item struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Image        *string   `json:"image,omitempty"`
	CategoryID   uuid.UUID `json:"category_id"`
	Type         string    `json:"type"`
	Size         string    `json:"size"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
