package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/review/domain"
)

// Repository provides persistence for reviews.
type Repository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*domain.Review, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByUser removes all reviews authored by the user and returns
	// the distinct movies they covered.
	DeleteByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
