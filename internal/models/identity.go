package models

import "time"

// Identity is the provider-owned half of an account: credentials and
// profile. It is deliberately kept apart from User so the identity
// provider can be swapped without touching the workflow tables.
type Identity struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	DisplayName  string `json:"display_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
