package identity

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("identity not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already exists")
)

// Account is the provider's view of a user: profile and credentials,
// nothing about roles or assignments.
type Account struct {
	ID          string
	Email       string
	DisplayName string
}

// Provider issues and verifies identity tokens and owns credential
// storage. The workflow side of the system only ever sees the opaque
// identity id.
type Provider interface {
	// Create registers a new identity and returns it with a generated id.
	Create(ctx context.Context, email, password, displayName string) (Account, error)

	// PasswordGrant verifies credentials and returns a signed identity
	// token. Returns ErrInvalidCredentials for a bad email or password.
	PasswordGrant(ctx context.Context, email, password string) (string, error)

	// Verify checks an identity token and returns the identity id.
	Verify(ctx context.Context, token string) (string, error)

	// Lookup returns the account for an identity id, or ErrNotFound.
	Lookup(ctx context.Context, id string) (Account, error)

	// Delete removes an identity, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
