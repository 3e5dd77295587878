// Package workflow implements the content assignment workflow: the
// lifecycle unassigned → assigned → on-progress → done, the
// reassignment path, and the consistency rules between content records
// and the holding user's assigned flag.
package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/taufanAli65/social-media-todo-api/internal/models"
	"github.com/taufanAli65/social-media-todo-api/internal/store"
	"github.com/taufanAli65/social-media-todo-api/internal/types"
)

// Caller identifies the authenticated user on whose behalf an operation
// runs.
type Caller struct {
	ID   string
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == types.RoleAdmin
}

// Notifier observes successful workflow mutations. Implementations must
// not block; failures are theirs to log.
type Notifier interface {
	Notify(event types.ContentEvent)
}

type Service struct {
	store     store.Store
	now       func() time.Time
	notifiers []Notifier
}

func NewService(st store.Store, notifiers ...Notifier) *Service {
	return &Service{store: st, now: time.Now, notifiers: notifiers}
}

// WithClock replaces the service clock. For tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type AddContentInput struct {
	Title    string
	Brand    string
	Platform string
	Payment  float64
}

// AddContent creates a new unassigned content item due one week out.
func (s *Service) AddContent(ctx context.Context, in AddContentInput) (*models.Content, error) {
	if in.Title == "" || in.Brand == "" || in.Platform == "" || in.Payment == 0 {
		return nil, ErrMissingFields
	}

	content := models.Content{
		Title:    in.Title,
		Brand:    in.Brand,
		Platform: in.Platform,
		Payment:  in.Payment,
		Status:   types.StatusUnassigned,
		DueDate:  DueDateFrom(s.now()),
	}

	if err := s.store.CreateContent(ctx, &content); err != nil {
		return nil, err
	}

	return &content, nil
}

// ListContents returns every content item for admins and only the
// caller's assignments otherwise. An empty result is reported as
// ErrNoContents; the API does not distinguish "nothing exists" from
// "nothing visible".
func (s *Service) ListContents(ctx context.Context, caller Caller) ([]models.Content, error) {
	var (
		contents []models.Content
		err      error
	)

	if caller.IsAdmin() {
		contents, err = s.store.ListContents(ctx)
	} else {
		contents, err = s.store.ListContentsByAssignee(ctx, caller.ID)
	}

	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, ErrNoContents
	}

	return contents, nil
}

// ListContentsByStatus returns all content in the given status. Caller
// filtering is deliberately absent; the route is admin-gated.
func (s *Service) ListContentsByStatus(ctx context.Context, status string) ([]models.Content, error) {
	if !types.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	contents, err := s.store.ListContentsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, ErrNoContents
	}

	return contents, nil
}

// ListUserContents returns content assigned to targetUserID. Callers
// who are neither admin nor the target get an empty list, not an error.
func (s *Service) ListUserContents(ctx context.Context, targetUserID string, caller Caller) ([]models.Content, error) {
	if _, err := s.store.GetUser(ctx, targetUserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !caller.IsAdmin() && caller.ID != targetUserID {
		return []models.Content{}, nil
	}

	return s.store.ListContentsByAssignee(ctx, targetUserID)
}

// GetContent returns a single content item, visible to admins and the
// current assignee only.
func (s *Service) GetContent(ctx context.Context, contentID string, caller Caller) (*models.Content, error) {
	content, err := s.store.GetContent(ctx, contentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	if !caller.IsAdmin() && (content.AssignedTo == nil || *content.AssignedTo != caller.ID) {
		return nil, ErrNotAssignee
	}

	return content, nil
}

// Assign binds an unassigned content item to a user. Both records must
// exist, the content must not already be assigned, and the user must
// not already hold an assignment. The content update and the user flag
// flip commit together.
func (s *Service) Assign(ctx context.Context, userID, contentID string) error {
	if userID == "" || contentID == "" {
		return ErrMissingParameter
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	content, err := s.getContent(ctx, contentID)
	if err != nil {
		return err
	}

	if user.Assigned || content.AssignedTo != nil {
		return ErrAlreadyAssigned
	}

	err = s.store.Transact(ctx, func(tx store.Store) error {
		if err := tx.AssignContent(ctx, contentID, userID); err != nil {
			return err
		}
		return tx.SetUserAssigned(ctx, userID, true)
	})
	if err != nil {
		return err
	}

	s.notify(types.ContentEvent{
		Type:      "assigned",
		ContentID: content.ID,
		Title:     content.Title,
		UserID:    userID,
		Status:    types.StatusAssigned,
		DueDate:   content.DueDate,
		At:        s.now(),
	})

	return nil
}

// Reassign hands a content item to a different user and restarts the
// assignment window. The new assignee's flag is written false here,
// mirroring the shipped behavior; see DESIGN.md before changing it.
func (s *Service) Reassign(ctx context.Context, userID, contentID string) error {
	if userID == "" || contentID == "" {
		return ErrMissingParameter
	}

	if _, err := s.getUser(ctx, userID); err != nil {
		return err
	}
	content, err := s.getContent(ctx, contentID)
	if err != nil {
		return err
	}

	dueDate := DueDateFrom(s.now())

	err = s.store.Transact(ctx, func(tx store.Store) error {
		if err := tx.ReassignContent(ctx, contentID, userID, dueDate); err != nil {
			return err
		}
		return tx.SetUserAssigned(ctx, userID, false)
	})
	if err != nil {
		return err
	}

	s.notify(types.ContentEvent{
		Type:      "reassigned",
		ContentID: content.ID,
		Title:     content.Title,
		UserID:    userID,
		Status:    types.StatusAssigned,
		DueDate:   dueDate,
		At:        s.now(),
	})

	return nil
}

// UpdateStatus moves a content item to a new workflow status. Only the
// current assignee may do this.
func (s *Service) UpdateStatus(ctx context.Context, userID, contentID, status string) error {
	if userID == "" || contentID == "" || status == "" {
		return ErrMissingFields
	}
	if !types.ValidStatus(status) {
		return ErrInvalidStatus
	}

	if _, err := s.getUser(ctx, userID); err != nil {
		return err
	}
	content, err := s.getContent(ctx, contentID)
	if err != nil {
		return err
	}

	if content.AssignedTo == nil || *content.AssignedTo != userID {
		return ErrNotAssignee
	}

	if err := s.store.SetContentStatus(ctx, contentID, status); err != nil {
		return err
	}

	s.notify(types.ContentEvent{
		Type:      "status",
		ContentID: content.ID,
		Title:     content.Title,
		UserID:    userID,
		Status:    status,
		At:        s.now(),
	})

	return nil
}

// Delete removes a content item, releasing the current assignee's flag
// in the same transaction so no user stays marked assigned for work
// that no longer exists.
func (s *Service) Delete(ctx context.Context, contentID string) error {
	if contentID == "" {
		return ErrMissingParameter
	}

	content, err := s.getContent(ctx, contentID)
	if err != nil {
		return err
	}

	err = s.store.Transact(ctx, func(tx store.Store) error {
		if content.AssignedTo != nil {
			if err := tx.SetUserAssigned(ctx, *content.AssignedTo, false); err != nil {
				return err
			}
		}
		return tx.DeleteContent(ctx, contentID)
	})
	if err != nil {
		return err
	}

	s.notify(types.ContentEvent{
		Type:      "deleted",
		ContentID: content.ID,
		Title:     content.Title,
		At:        s.now(),
	})

	return nil
}

func (s *Service) getUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) getContent(ctx context.Context, id string) (*models.Content, error) {
	content, err := s.store.GetContent(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return content, nil
}

func (s *Service) notify(event types.ContentEvent) {
	for _, n := range s.notifiers {
		n.Notify(event)
	}
}
