package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/taufanAli65/social-media-todo-api/internal/models"
	"github.com/taufanAli65/social-media-todo-api/internal/types"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &user, nil
}

func (s *GormStore) SetUserAssigned(ctx context.Context, id string, assigned bool) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"assigned": assigned})
	if result.Error != nil {
		return fmt.Errorf("updating user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteUser(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("deleting user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CreateContent(ctx context.Context, content *models.Content) error {
	if err := s.db.WithContext(ctx).Create(content).Error; err != nil {
		return fmt.Errorf("creating content: %w", err)
	}
	return nil
}

func (s *GormStore) GetContent(ctx context.Context, id string) (*models.Content, error) {
	var content models.Content
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching content: %w", err)
	}
	return &content, nil
}

func (s *GormStore) ListContents(ctx context.Context) ([]models.Content, error) {
	var contents []models.Content
	if err := s.db.WithContext(ctx).Find(&contents).Error; err != nil {
		return nil, fmt.Errorf("listing contents: %w", err)
	}
	return contents, nil
}

func (s *GormStore) ListContentsByAssignee(ctx context.Context, userID string) ([]models.Content, error) {
	var contents []models.Content
	if err := s.db.WithContext(ctx).Where("assigned_to = ?", userID).Find(&contents).Error; err != nil {
		return nil, fmt.Errorf("listing contents by assignee: %w", err)
	}
	return contents, nil
}

func (s *GormStore) ListContentsByStatus(ctx context.Context, status string) ([]models.Content, error) {
	var contents []models.Content
	if err := s.db.WithContext(ctx).Where("status = ?", status).Find(&contents).Error; err != nil {
		return nil, fmt.Errorf("listing contents by status: %w", err)
	}
	return contents, nil
}

func (s *GormStore) AssignContent(ctx context.Context, id, userID string) error {
	return s.updateContent(ctx, id, map[string]interface{}{
		"status":      types.StatusAssigned,
		"assigned_to": userID,
	})
}

func (s *GormStore) ReassignContent(ctx context.Context, id, userID string, dueDate time.Time) error {
	return s.updateContent(ctx, id, map[string]interface{}{
		"status":      types.StatusAssigned,
		"assigned_to": userID,
		"due_date":    dueDate,
	})
}

func (s *GormStore) SetContentStatus(ctx context.Context, id, status string) error {
	return s.updateContent(ctx, id, map[string]interface{}{"status": status})
}

func (s *GormStore) DeleteContent(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Content{})
	if result.Error != nil {
		return fmt.Errorf("deleting content: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Transact(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) updateContent(ctx context.Context, id string, fields map[string]interface{}) error {
	result := s.db.WithContext(ctx).Model(&models.Content{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("updating content: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
