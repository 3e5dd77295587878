package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content is a unit of brand-sponsored work tracked through the
// assignment lifecycle. Title, brand, platform and payment are fixed at
// creation; status and assignment change through the workflow service.
type Content struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"not null" json:"title"`
	Brand    string  `gorm:"not null" json:"brand"`
	Platform string  `gorm:"not null" json:"platform"`
	Payment  float64 `gorm:"not null" json:"payment"`

	Status     string    `gorm:"not null;default:unassigned;index" json:"status"`
	DueDate    time.Time `json:"due_date"`
	AssignedTo *string   `gorm:"index" json:"assigned_to"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
