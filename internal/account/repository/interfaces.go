package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/account/domain"
)

// Repository provides persistence for user accounts.
type Repository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// EmailTaken reports whether another user (excluding the given id,
	// if non-nil) already uses the email.
	EmailTaken(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	// UsernameTaken reports whether another user already uses the username.
	UsernameTaken(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error)
}
