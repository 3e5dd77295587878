// Package users manages accounts across the identity provider and the
// user store: registration, login and deletion.
package users

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/taufanAli65/social-media-todo-api/internal/identity"
	"github.com/taufanAli65/social-media-todo-api/internal/models"
	"github.com/taufanAli65/social-media-todo-api/internal/store"
	"github.com/taufanAli65/social-media-todo-api/internal/types"
)

var (
	ErrMissingParameter = errors.New("There is not user id provided!")
	ErrUserNotFound     = errors.New("User not found")
)

type Service struct {
	provider identity.Provider
	store    store.Store
}

func NewService(provider identity.Provider, st store.Store) *Service {
	return &Service{provider: provider, store: st}
}

// Register creates an identity with the provider, then the matching
// user record with the default employee role. The two writes span two
// systems and are not atomic: a store failure leaves an orphan identity
// behind, which is logged rather than rolled back.
func (s *Service) Register(ctx context.Context, email, password, name string) (string, error) {
	account, err := s.provider.Create(ctx, email, password, name)
	if err != nil {
		return "", err
	}

	user := models.User{
		ID:       account.ID,
		Roles:    types.RoleEmployee,
		Assigned: false,
	}

	if err := s.store.CreateUser(ctx, &user); err != nil {
		log.Printf("user record write failed after identity creation, orphan identity %s: %v", account.ID, err)
		return "", fmt.Errorf("creating user record: %w", err)
	}

	return account.ID, nil
}

// Login exchanges credentials for an identity token. All password logic
// lives with the provider.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	return s.provider.PasswordGrant(ctx, email, password)
}

// Delete removes both halves of an account: the provider identity and
// the store record.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrMissingParameter
	}

	if err := s.provider.Delete(ctx, userID); err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.store.DeleteUser(ctx, userID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("deleting user record: %w", err)
	}

	return nil
}
