package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/review/domain"
	"github.com/cineflix/dbservice/pkg/database"
)

// Review is the reviews table row.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	MovieID   uuid.UUID `gorm:"column:movie_id;type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Rating    float64   `gorm:"not null"`
	Comment   string    `gorm:"size:1000"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Review) TableName() string { return "reviews" }

// Models returns the review models for migration.
func Models() []interface{} {
	return []interface{}{&Review{}}
}

// ForeignKeys returns the constraints to install after migration.
// Only the user reference is constrained: the account delete removes a
// user's reviews in the same transaction, whereas a movie delete
// leaves its reviews behind, which a movie reference would reject.
func ForeignKeys() []database.ForeignKey {
	return []database.ForeignKey{{
		Name:      "fk_reviews_user",
		Table:     "reviews",
		Column:    "user_id",
		RefTable:  "users",
		RefColumn: "id",
	}}
}

func toRow(r *domain.Review) *Review {
	return &Review{
		ID:        r.ID,
		MovieID:   r.MovieID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomain(row *Review) *domain.Review {
	return &domain.Review{
		ID:        row.ID,
		MovieID:   row.MovieID,
		UserID:    row.UserID,
		Rating:    row.Rating,
		Comment:   row.Comment,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
