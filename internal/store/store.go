// Package store abstracts the two persistent collections, users and
// contents, behind an interface so handlers and services never touch
// the database driver directly and tests can run against a double.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/taufanAli65/social-media-todo-api/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Store is the full persistence surface. Mutations are merge-writes:
// fields not named by the operation are left untouched. Transact runs
// fn atomically; multi-record sequences (assign, reassign, delete
// content) must go through it.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	SetUserAssigned(ctx context.Context, id string, assigned bool) error
	DeleteUser(ctx context.Context, id string) error

	CreateContent(ctx context.Context, content *models.Content) error
	GetContent(ctx context.Context, id string) (*models.Content, error)
	ListContents(ctx context.Context) ([]models.Content, error)
	ListContentsByAssignee(ctx context.Context, userID string) ([]models.Content, error)
	ListContentsByStatus(ctx context.Context, status string) ([]models.Content, error)
	AssignContent(ctx context.Context, id, userID string) error
	ReassignContent(ctx context.Context, id, userID string, dueDate time.Time) error
	SetContentStatus(ctx context.Context, id, status string) error
	DeleteContent(ctx context.Context, id string) error

	Transact(ctx context.Context, fn func(Store) error) error
}
