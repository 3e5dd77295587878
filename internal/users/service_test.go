package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taufanAli65/social-media-todo-api/internal/identity"
	"github.com/taufanAli65/social-media-todo-api/internal/identity/identitytest"
	"github.com/taufanAli65/social-media-todo-api/internal/store/storetest"
	"github.com/taufanAli65/social-media-todo-api/internal/types"
	"github.com/taufanAli65/social-media-todo-api/internal/users"
)

func TestRegister_DefaultsToUnassignedEmployee(t *testing.T) {
	provider := identitytest.NewFake()
	mem := storetest.NewMemory()
	svc := users.NewService(provider, mem)

	userID, err := svc.Register(context.Background(), "test@example.com", "password123", "Test User")
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	user, err := mem.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, types.RoleEmployee, user.Roles)
	assert.False(t, user.Assigned)

	account, err := provider.Lookup(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", account.Email)
	assert.Equal(t, "Test User", account.DisplayName)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	provider := identitytest.NewFake()
	mem := storetest.NewMemory()
	svc := users.NewService(provider, mem)

	_, err := svc.Register(context.Background(), "test@example.com", "password123", "First")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "test@example.com", "password456", "Second")
	assert.ErrorIs(t, err, identity.ErrEmailTaken)
}

func TestLogin_DelegatesToProvider(t *testing.T) {
	provider := identitytest.NewFake()
	mem := storetest.NewMemory()
	svc := users.NewService(provider, mem)

	id := provider.Seed(identity.Account{Email: "admin@example.com"}, "secret-pass")

	token, err := svc.Login(context.Background(), "admin@example.com", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, identitytest.Token(id), token)

	_, err = svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestDelete_RemovesBothRecords(t *testing.T) {
	provider := identitytest.NewFake()
	mem := storetest.NewMemory()
	svc := users.NewService(provider, mem)

	userID, err := svc.Register(context.Background(), "gone@example.com", "password123", "Gone")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), userID))

	_, err = provider.Lookup(context.Background(), userID)
	assert.ErrorIs(t, err, identity.ErrNotFound)

	_, err = mem.GetUser(context.Background(), userID)
	assert.Error(t, err)
}

func TestDelete_Validation(t *testing.T) {
	provider := identitytest.NewFake()
	mem := storetest.NewMemory()
	svc := users.NewService(provider, mem)

	assert.ErrorIs(t, svc.Delete(context.Background(), ""), users.ErrMissingParameter)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), users.ErrUserNotFound)
}
