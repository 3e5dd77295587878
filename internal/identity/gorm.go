package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/taufanAli65/social-media-todo-api/internal/auth"
	"github.com/taufanAli65/social-media-todo-api/internal/models"
)

// GormProvider stores identities in the database and signs tokens with
// the shared token manager. It satisfies Provider.
type GormProvider struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

func NewGormProvider(db *gorm.DB, tokens *auth.TokenManager) *GormProvider {
	return &GormProvider{db: db, tokens: tokens}
}

func (p *GormProvider) Create(ctx context.Context, email, password, displayName string) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.Identity
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return Account{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, fmt.Errorf("checking existing identity: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, fmt.Errorf("hashing password: %w", err)
	}

	record := models.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}

	if err := p.db.WithContext(ctx).Create(&record).Error; err != nil {
		return Account{}, fmt.Errorf("creating identity: %w", err)
	}

	return Account{ID: record.ID, Email: record.Email, DisplayName: record.DisplayName}, nil
}

func (p *GormProvider) PasswordGrant(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var record models.Identity
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("fetching identity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return p.tokens.Generate(record.ID, record.Email)
}

func (p *GormProvider) Verify(ctx context.Context, token string) (string, error) {
	return p.tokens.Verify(token)
}

func (p *GormProvider) Lookup(ctx context.Context, id string) (Account, error) {
	var record models.Identity
	err := p.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Account{}, ErrNotFound
		}
		return Account{}, fmt.Errorf("fetching identity: %w", err)
	}

	return Account{ID: record.ID, Email: record.Email, DisplayName: record.DisplayName}, nil
}

func (p *GormProvider) Delete(ctx context.Context, id string) error {
	result := p.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Identity{})
	if result.Error != nil {
		return fmt.Errorf("deleting identity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
