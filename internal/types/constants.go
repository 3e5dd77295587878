package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// Roles stored on a user record.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Content workflow statuses.
const (
	StatusUnassigned = "unassigned"
	StatusAssigned   = "assigned"
	StatusOnProgress = "on-progress"
	StatusDone       = "done"
)

// ValidStatus reports whether s is one of the four workflow statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusUnassigned, StatusAssigned, StatusOnProgress, StatusDone:
		return true
	}
	return false
}

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
