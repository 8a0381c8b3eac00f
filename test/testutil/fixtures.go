package testutil

import (
	"time"

	"github.com/google/uuid"

	accountdomain "github.com/cineflix/dbservice/internal/account/domain"
	catalogdomain "github.com/cineflix/dbservice/internal/catalog/domain"
	reviewdomain "github.com/cineflix/dbservice/internal/review/domain"
)

// NewTestMovie creates a movie with sensible defaults.
func NewTestMovie(title string) *catalogdomain.Movie {
	return &catalogdomain.Movie{
		ID:          uuid.New(),
		Title:       title,
		Genres:      []string{"Drama"},
		Directors:   []string{"Denis Villeneuve"},
		Actors:      []string{"Amy Adams"},
		RunTime:     116,
		ReleaseDate: time.Date(2016, 11, 11, 0, 0, 0, 0, time.UTC),
		Description: "A linguist is recruited to communicate with visitors.",
	}
}

// NewTestUser creates a user with sensible defaults.
func NewTestUser(username, email string) *accountdomain.User {
	return &accountdomain.User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Role:           accountdomain.RoleUser,
	}
}

// NewTestReview creates a review for the given movie and user.
func NewTestReview(movieID, userID uuid.UUID, rating float64) *reviewdomain.Review {
	return &reviewdomain.Review{
		ID:      uuid.New(),
		MovieID: movieID,
		UserID:  userID,
		Rating:  rating,
		Comment: "solid",
	}
}
