// Package identitytest provides an in-memory identity.Provider for
// unit tests. Tokens are "token-<id>" so tests can mint them directly.
package identitytest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/taufanAli65/social-media-todo-api/internal/identity"
)

const tokenPrefix = "token-"

// Token returns the bearer token the fake accepts for an identity id.
func Token(id string) string {
	return tokenPrefix + id
}

type Fake struct {
	mu        sync.Mutex
	accounts  map[string]identity.Account
	passwords map[string]string // keyed by email
}

func NewFake() *Fake {
	return &Fake{
		accounts:  make(map[string]identity.Account),
		passwords: make(map[string]string),
	}
}

// Seed registers an account without going through Create and returns
// its id.
func (f *Fake) Seed(account identity.Account, password string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	f.accounts[account.ID] = account
	f.passwords[account.Email] = password
	return account.ID
}

func (f *Fake) Create(ctx context.Context, email, password, displayName string) (identity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, account := range f.accounts {
		if account.Email == email {
			return identity.Account{}, identity.ErrEmailTaken
		}
	}

	account := identity.Account{ID: uuid.NewString(), Email: email, DisplayName: displayName}
	f.accounts[account.ID] = account
	f.passwords[email] = password
	return account, nil
}

func (f *Fake) PasswordGrant(ctx context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.passwords[email]
	if !ok || stored != password {
		return "", identity.ErrInvalidCredentials
	}

	for _, account := range f.accounts {
		if account.Email == email {
			return Token(account.ID), nil
		}
	}
	return "", identity.ErrInvalidCredentials
}

func (f *Fake) Verify(ctx context.Context, token string) (string, error) {
	if !strings.HasPrefix(token, tokenPrefix) {
		return "", fmt.Errorf("Invalid or expired token")
	}
	return strings.TrimPrefix(token, tokenPrefix), nil
}

func (f *Fake) Lookup(ctx context.Context, id string) (identity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return identity.Account{}, identity.ErrNotFound
	}
	return account, nil
}

func (f *Fake) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return identity.ErrNotFound
	}
	delete(f.accounts, id)
	delete(f.passwords, account.Email)
	return nil
}
