package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/catalog/domain"
)

// Repository provides persistence for movies.
type Repository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	List(ctx context.Context) ([]*domain.Movie, error)
	ListByGenre(ctx context.Context, genre string) ([]*domain.Movie, error)
	ListByDirector(ctx context.Context, director string) ([]*domain.Movie, error)
	ListByActor(ctx context.Context, actor string) ([]*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	// UpdateRating writes the derived average rating; nil clears it.
	UpdateRating(ctx context.Context, id uuid.UUID, rating *float64) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}
