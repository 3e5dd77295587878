package models

import "time"

// User is the store-owned half of an account. The primary key is the
// identity provider's id; email, display name and credentials live with
// the provider, not here.
type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Roles    string `gorm:"not null;default:employee" json:"roles"`
	Assigned bool   `gorm:"not null;default:false" json:"assigned"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
