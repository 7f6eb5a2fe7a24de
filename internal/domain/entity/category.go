// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a user-defined spend label.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Icon      *string
	Color     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category owned by userID.
func NewCategory(userID uuid.UUID, name string, icon, color *string, now time.Time) *Category {
	now = now.UTC()
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy reports whether the category belongs to userID.
func (c *Category) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}
