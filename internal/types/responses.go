package types

import "time"

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Roles       string `json:"roles"`
	Assigned    bool   `json:"assigned"`
}

// ContentEvent describes a workflow mutation, for the live feed and
// webhook notifiers.
type ContentEvent struct {
	Type      string    `json:"type"` // "assigned", "reassigned", "status", "deleted"
	ContentID string    `json:"content_id"`
	Title     string    `json:"title"`
	UserID    string    `json:"user_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	DueDate   time.Time `json:"due_date,omitempty"`
	At        time.Time `json:"at"`
}
