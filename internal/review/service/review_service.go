package service

import (
	"context"

	"github.com/google/uuid"

	catalogservice "github.com/cineflix/dbservice/internal/catalog/service"
	"github.com/cineflix/dbservice/internal/review/domain"
	"github.com/cineflix/dbservice/internal/review/repository"
	"github.com/cineflix/dbservice/internal/storage"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/events"
	"github.com/cineflix/dbservice/pkg/interfaces"
)

// ReviewService handles review business logic. Mutations run through
// the unit of work so the review write and the rating recompute land in
// one transaction.
type ReviewService struct {
	repo       repository.Repository
	uow        storage.UnitOfWork
	aggregator *RatingAggregator
	eventBus   interfaces.EventBus
	cache      interfaces.Cache
	logger     interfaces.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	repo repository.Repository,
	uow storage.UnitOfWork,
	eventBus interfaces.EventBus,
	cache interfaces.Cache,
	logger interfaces.Logger,
) *ReviewService {
	return &ReviewService{
		repo:       repo,
		uow:        uow,
		aggregator: NewRatingAggregator(),
		eventBus:   eventBus,
		cache:      cache,
		logger:     logger,
	}
}

// CreateReview stores a review and refreshes the movie's rating
func (s *ReviewService) CreateReview(ctx context.Context, review *domain.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}

	err := s.uow.Execute(ctx, func(repos storage.Repositories) error {
		movieExists, err := repos.Catalog.Exists(ctx, review.MovieID)
		if err != nil {
			return err
		}
		userExists, err := repos.Accounts.Exists(ctx, review.UserID)
		if err != nil {
			return err
		}
		if !movieExists || !userExists {
			return errors.NotFound("movie or user not found")
		}

		if err := repos.Reviews.Create(ctx, review); err != nil {
			return err
		}
		return s.aggregator.Recompute(ctx, repos, review.MovieID)
	})
	if err != nil {
		return err
	}

	// The recompute moved the movie's derived rating; a cached copy
	// would serve the old value.
	s.cache.Delete(ctx, catalogservice.MovieCacheKey(review.MovieID))

	s.eventBus.PublishAsync(ctx, events.NewEvent(events.ReviewCreated, review.ID.String(), map[string]interface{}{
		"movie_id": review.MovieID.String(),
		"user_id":  review.UserID.String(),
		"rating":   review.Rating,
	}))
	s.eventBus.PublishAsync(ctx, events.NewEvent(events.MovieRated, review.MovieID.String(), nil))

	s.logger.Info("Review created",
		interfaces.String("id", review.ID.String()),
		interfaces.String("movie_id", review.MovieID.String()))

	return nil
}

// GetReview retrieves a review by ID
func (s *ReviewService) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return s.repo.GetByID(ctx, id)
}

// ListReviewsByMovie lists a movie's reviews
func (s *ReviewService) ListReviewsByMovie(ctx context.Context, movieID uuid.UUID) ([]*domain.Review, error) {
	return s.repo.ListByMovie(ctx, movieID)
}

// ListReviewsByUser lists a user's reviews
func (s *ReviewService) ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateReview rewrites a review's rating and comment and refreshes the
// movie's rating
func (s *ReviewService) UpdateReview(ctx context.Context, id uuid.UUID, rating float64, comment string) (*domain.Review, error) {
	var updated *domain.Review
	err := s.uow.Execute(ctx, func(repos storage.Repositories) error {
		review, err := repos.Reviews.GetByID(ctx, id)
		if err != nil {
			return err
		}

		review.Rating = rating
		review.Comment = comment
		if err := review.Validate(); err != nil {
			return err
		}

		if err := repos.Reviews.Update(ctx, review); err != nil {
			return err
		}
		if err := s.aggregator.Recompute(ctx, repos, review.MovieID); err != nil {
			return err
		}
		updated = review
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, catalogservice.MovieCacheKey(updated.MovieID))

	s.eventBus.PublishAsync(ctx, events.NewEvent(events.ReviewUpdated, id.String(), map[string]interface{}{
		"movie_id": updated.MovieID.String(),
		"rating":   updated.Rating,
	}))
	s.eventBus.PublishAsync(ctx, events.NewEvent(events.MovieRated, updated.MovieID.String(), nil))

	return updated, nil
}

// DeleteReview removes a review and refreshes the movie's rating. The
// movie reference is captured before the delete.
func (s *ReviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	var movieID uuid.UUID
	err := s.uow.Execute(ctx, func(repos storage.Repositories) error {
		review, err := repos.Reviews.GetByID(ctx, id)
		if err != nil {
			return err
		}
		movieID = review.MovieID

		if err := repos.Reviews.Delete(ctx, id); err != nil {
			return err
		}
		return s.aggregator.Recompute(ctx, repos, movieID)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(ctx, catalogservice.MovieCacheKey(movieID))

	s.eventBus.PublishAsync(ctx, events.NewEvent(events.ReviewDeleted, id.String(), map[string]interface{}{
		"movie_id": movieID.String(),
	}))
	s.eventBus.PublishAsync(ctx, events.NewEvent(events.MovieRated, movieID.String(), nil))

	s.logger.Info("Review deleted",
		interfaces.String("id", id.String()),
		interfaces.String("movie_id", movieID.String()))

	return nil
}
