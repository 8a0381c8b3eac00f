package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/pkg/validation"
)

// Movie is a catalog aggregate root. Rating is derived from the movie's
// reviews and is never written by callers; nil means no reviews yet.
type Movie struct {
	ID          uuid.UUID
	Title       string   `validate:"required,max=255"`
	Genres      []string // unordered sets
	Directors   []string
	Actors      []string
	RunTime     int       `validate:"gt=0"` // minutes
	ReleaseDate time.Time `validate:"required"`
	Rating      *float64  `validate:"omitempty,gte=0,lte=10"`
	Description string    `validate:"max=1000"`
	PosterURL   string    `validate:"omitempty,max=500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks field-level constraints.
func (m *Movie) Validate() error {
	return validation.Struct(m)
}
