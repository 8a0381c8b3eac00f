package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/library/domain"
)

// ListRepository provides persistence for one per-user movie list
// (favorites or watch list).
type ListRepository interface {
	// Add inserts the (user, movie) pair; returns false without error
	// when the pair is already present.
	Add(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
	// Remove deletes the (user, movie) pair if present; removing an
	// absent pair is not an error.
	Remove(ctx context.Context, userID, movieID uuid.UUID) error
	// List returns the user's entries, oldest first.
	List(ctx context.Context, userID uuid.UUID) ([]domain.Entry, error)
	Contains(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
}
