// Package storetest provides an in-memory Store for unit tests.
package storetest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taufanAli65/social-media-todo-api/internal/models"
	"github.com/taufanAli65/social-media-todo-api/internal/store"
	"github.com/taufanAli65/social-media-todo-api/internal/types"
)

// Memory is a map-backed store.Store. Transact is not atomic, it just
// runs fn against the same store; tests that need failure injection can
// set the Fail hooks.
type Memory struct {
	mu       sync.Mutex
	users    map[string]models.User
	contents map[string]models.Content

	// FailSetUserAssigned, when non-nil, is returned from SetUserAssigned.
	FailSetUserAssigned error
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]models.User),
		contents: make(map[string]models.Content),
	}
}

// SeedUser inserts a user and returns its id.
func (m *Memory) SeedUser(user models.User) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.users[user.ID] = user
	return user.ID
}

// SeedContent inserts a content record and returns its id.
func (m *Memory) SeedContent(content models.Content) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if content.ID == "" {
		content.ID = uuid.NewString()
	}
	m.contents[content.ID] = content
	return content.ID
}

func (m *Memory) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.Roles == "" {
		user.Roles = types.RoleEmployee
	}
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) GetUser(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func (m *Memory) SetUserAssigned(ctx context.Context, id string, assigned bool) error {
	if m.FailSetUserAssigned != nil {
		return m.FailSetUserAssigned
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return store.ErrNotFound
	}
	user.Assigned = assigned
	m.users[id] = user
	return nil
}

func (m *Memory) DeleteUser(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *Memory) CreateContent(ctx context.Context, content *models.Content) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if content.ID == "" {
		content.ID = uuid.NewString()
	}
	m.contents[content.ID] = *content
	return nil
}

func (m *Memory) GetContent(ctx context.Context, id string) (*models.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.contents[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &content, nil
}

func (m *Memory) ListContents(ctx context.Context) ([]models.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Content
	for _, content := range m.contents {
		out = append(out, content)
	}
	return out, nil
}

func (m *Memory) ListContentsByAssignee(ctx context.Context, userID string) ([]models.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Content
	for _, content := range m.contents {
		if content.AssignedTo != nil && *content.AssignedTo == userID {
			out = append(out, content)
		}
	}
	return out, nil
}

func (m *Memory) ListContentsByStatus(ctx context.Context, status string) ([]models.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Content
	for _, content := range m.contents {
		if content.Status == status {
			out = append(out, content)
		}
	}
	return out, nil
}

func (m *Memory) AssignContent(ctx context.Context, id, userID string) error {
	return m.updateContent(id, func(c *models.Content) {
		c.Status = types.StatusAssigned
		c.AssignedTo = &userID
	})
}

func (m *Memory) ReassignContent(ctx context.Context, id, userID string, dueDate time.Time) error {
	return m.updateContent(id, func(c *models.Content) {
		c.Status = types.StatusAssigned
		c.AssignedTo = &userID
		c.DueDate = dueDate
	})
}

func (m *Memory) SetContentStatus(ctx context.Context, id, status string) error {
	return m.updateContent(id, func(c *models.Content) {
		c.Status = status
	})
}

func (m *Memory) DeleteContent(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.contents[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.contents, id)
	return nil
}

func (m *Memory) Transact(ctx context.Context, fn func(store.Store) error) error {
	return fn(m)
}

func (m *Memory) updateContent(id string, mutate func(*models.Content)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.contents[id]
	if !ok {
		return store.ErrNotFound
	}
	mutate(&content)
	m.contents[id] = content
	return nil
}
