package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/storage"
)

// RatingAggregator maintains a movie's derived average rating. It must
// run inside the same transaction as the review mutation that
// invalidated the old value.
type RatingAggregator struct{}

// NewRatingAggregator creates a rating aggregator.
func NewRatingAggregator() *RatingAggregator {
	return &RatingAggregator{}
}

// Recompute reloads the movie's reviews and writes back the mean
// rating, or clears it when no reviews remain.
func (a *RatingAggregator) Recompute(ctx context.Context, repos storage.Repositories, movieID uuid.UUID) error {
	reviews, err := repos.Reviews.ListByMovie(ctx, movieID)
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		return repos.Catalog.UpdateRating(ctx, movieID, nil)
	}

	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}
	mean := sum / float64(len(reviews))
	return repos.Catalog.UpdateRating(ctx, movieID, &mean)
}
