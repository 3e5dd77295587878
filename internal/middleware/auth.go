package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/taufanAli65/social-media-todo-api/internal/identity"
	"github.com/taufanAli65/social-media-todo-api/internal/store"
	"github.com/taufanAli65/social-media-todo-api/internal/types"
)

// AuthenticatedUser is the per-request caller identity attached to the
// gin context after token verification.
type AuthenticatedUser struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Assigned bool   `json:"assigned"`
}

// RequireAuth verifies the bearer token with the identity provider and
// loads the caller's role from the user store. The role read happens on
// every request; nothing is cached.
func RequireAuth(provider identity.Provider, users store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "invalid", "message": "No token provided"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "invalid", "message": "No token provided"})
			return
		}

		identityID, err := provider.Verify(ctx.Request.Context(), parts[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "invalid", "error": "Invalid or expired token"})
			return
		}

		user, err := users.GetUser(ctx.Request.Context(), identityID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "invalid", "error": "User not found"})
				return
			}
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": "Internal Server Error", "error": err.Error()})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:       user.ID,
			Role:     user.Roles,
			Assigned: user.Assigned,
		})
		ctx.Next()
	}
}

// RequireAdmin rejects callers whose stored role is not admin. Must run
// after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		user, ok := value.(AuthenticatedUser)
		if !exists || !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "invalid", "message": "No token provided"})
			return
		}

		if user.Role == "" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "Forbidden", "error": "No roles found for this user!"})
			return
		}

		if user.Role != types.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "Forbidden", "error": "Access denied. Unauthorized role."})
			return
		}

		ctx.Next()
	}
}
