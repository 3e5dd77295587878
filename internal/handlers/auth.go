package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taufanAli65/social-media-todo-api/internal/identity"
	"github.com/taufanAli65/social-media-todo-api/internal/users"
)

type AuthHandler struct {
	users *users.Service
}

func NewAuthHandler(service *users.Service) *AuthHandler {
	return &AuthHandler{users: service}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "Internal Server Error", "error": err.Error()})
		return
	}

	userID, err := h.users.Register(ctx.Request.Context(), body.Email, body.Password, body.Name)

	if err != nil {
		log.Printf("Failed to register user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "Internal Server Error", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": fmt.Sprintf("Successfully created new User : %s", userID),
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "Internal Server Error", "error": err.Error()})
		return
	}

	idToken, err := h.users.Login(ctx.Request.Context(), body.Email, body.Password)

	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"status": "invalid", "error": err.Error()})
			return
		}
		log.Printf("Failed to login user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "Internal Server Error", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "Success", "idToken": idToken})
}

func (h *AuthHandler) DeleteUser(ctx *gin.Context) {
	userID := ctx.Param("userID")

	err := h.users.Delete(ctx.Request.Context(), userID)

	if err != nil {
		switch {
		case errors.Is(err, users.ErrMissingParameter):
			ctx.JSON(http.StatusBadRequest, gin.H{"status": "failed", "error": err.Error()})
		case errors.Is(err, users.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"status": "User not found"})
		default:
			log.Printf("Failed to delete user %s: %v", userID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"status": "failed", "error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": fmt.Sprintf("User ID : %s is deleted successfully", userID),
	})
}
