package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/pkg/validation"
)

// Review is a user's rating of a movie, with an optional comment.
type Review struct {
	ID        uuid.UUID
	MovieID   uuid.UUID `validate:"required"`
	UserID    uuid.UUID `validate:"required"`
	Rating    float64   `validate:"gte=0,lte=10"`
	Comment   string    `validate:"max=1000"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks field-level constraints.
func (r *Review) Validate() error {
	return validation.Struct(r)
}
