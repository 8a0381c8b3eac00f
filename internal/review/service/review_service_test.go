package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	accountdomain "github.com/cineflix/dbservice/internal/account/domain"
	accountrepo "github.com/cineflix/dbservice/internal/account/repository"
	catalogdomain "github.com/cineflix/dbservice/internal/catalog/domain"
	catalogrepo "github.com/cineflix/dbservice/internal/catalog/repository"
	catalogservice "github.com/cineflix/dbservice/internal/catalog/service"
	reviewdomain "github.com/cineflix/dbservice/internal/review/domain"
	reviewrepo "github.com/cineflix/dbservice/internal/review/repository"
	"github.com/cineflix/dbservice/internal/review/service"
	"github.com/cineflix/dbservice/internal/storage"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/events"
	"github.com/cineflix/dbservice/pkg/logger"
	"github.com/cineflix/dbservice/pkg/utils"
	"github.com/cineflix/dbservice/test/testutil"
)

// fakeStore is an in-memory stand-in for the three repositories,
// enough to drive review mutations and rating recomputes.
type fakeStore struct {
	movies  map[uuid.UUID]*catalogdomain.Movie
	users   map[uuid.UUID]*accountdomain.User
	reviews map[uuid.UUID]*reviewdomain.Review
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		movies:  make(map[uuid.UUID]*catalogdomain.Movie),
		users:   make(map[uuid.UUID]*accountdomain.User),
		reviews: make(map[uuid.UUID]*reviewdomain.Review),
	}
}

type fakeCatalogRepo struct {
	catalogrepo.Repository

	store *fakeStore
}

func (f *fakeCatalogRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.store.movies[id]
	return ok, nil
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*catalogdomain.Movie, error) {
	movie, ok := f.store.movies[id]
	if !ok {
		return nil, errors.NotFound("movie not found")
	}
	copied := *movie
	return &copied, nil
}

func (f *fakeCatalogRepo) UpdateRating(ctx context.Context, id uuid.UUID, rating *float64) error {
	movie, ok := f.store.movies[id]
	if !ok {
		return errors.NotFound("movie not found")
	}
	movie.Rating = rating
	return nil
}

type fakeAccountRepo struct {
	accountrepo.Repository

	store *fakeStore
}

func (f *fakeAccountRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.store.users[id]
	return ok, nil
}

type fakeReviewRepo struct {
	reviewrepo.Repository

	store *fakeStore
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *reviewdomain.Review) error {
	copied := *review
	f.store.reviews[review.ID] = &copied
	return nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*reviewdomain.Review, error) {
	review, ok := f.store.reviews[id]
	if !ok {
		return nil, errors.NotFound("review not found")
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*reviewdomain.Review, error) {
	var out []*reviewdomain.Review
	for _, review := range f.store.reviews {
		if review.MovieID == movieID {
			copied := *review
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *reviewdomain.Review) error {
	existing, ok := f.store.reviews[review.ID]
	if !ok {
		return errors.NotFound("review not found")
	}
	existing.Rating = review.Rating
	existing.Comment = review.Comment
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.store.reviews[id]; !ok {
		return errors.NotFound("review not found")
	}
	delete(f.store.reviews, id)
	return nil
}

// fakeUnitOfWork hands the fake repositories straight to the callback.
type fakeUnitOfWork struct {
	repos storage.Repositories
}

func (f *fakeUnitOfWork) Execute(ctx context.Context, fn func(repos storage.Repositories) error) error {
	return fn(f.repos)
}

type ReviewServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *fakeStore
	reviews *service.ReviewService
	catalog *catalogservice.CatalogService
	movie   *catalogdomain.Movie
	user    *accountdomain.User
	user2   *accountdomain.User
}

func (suite *ReviewServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newFakeStore()

	movieRepository := &fakeCatalogRepo{store: suite.store}
	reviewRepository := &fakeReviewRepo{store: suite.store}
	uow := &fakeUnitOfWork{repos: storage.Repositories{
		Catalog:  movieRepository,
		Accounts: &fakeAccountRepo{store: suite.store},
		Reviews:  reviewRepository,
	}}

	eventBus := events.NewLocalEventBus(logger.NewNoopLogger())
	cache := utils.NewInMemoryCache()

	suite.reviews = service.NewReviewService(
		reviewRepository,
		uow,
		eventBus,
		cache,
		logger.NewNoopLogger(),
	)
	// Reads go through the same cache the review service invalidates.
	suite.catalog = catalogservice.NewCatalogService(
		movieRepository,
		eventBus,
		cache,
		logger.NewNoopLogger(),
	)

	suite.movie = testutil.NewTestMovie("Arrival")
	suite.user = testutil.NewTestUser("alice", "alice@example.com")
	suite.user2 = testutil.NewTestUser("bob", "bob@example.com")
	suite.store.movies[suite.movie.ID] = suite.movie
	suite.store.users[suite.user.ID] = suite.user
	suite.store.users[suite.user2.ID] = suite.user2
}

func (suite *ReviewServiceTestSuite) TestCreateReview_MissingMovie() {
	review := testutil.NewTestReview(uuid.New(), suite.user.ID, 8)

	err := suite.reviews.CreateReview(suite.ctx, review)

	suite.Error(err)
	suite.True(errors.IsNotFound(err))
	suite.Contains(err.Error(), "movie or user not found")
}

func (suite *ReviewServiceTestSuite) TestCreateReview_MissingUser() {
	review := testutil.NewTestReview(suite.movie.ID, uuid.New(), 8)

	err := suite.reviews.CreateReview(suite.ctx, review)

	suite.Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *ReviewServiceTestSuite) TestCreateReview_RatingOutOfRange() {
	review := testutil.NewTestReview(suite.movie.ID, suite.user.ID, 10.5)

	err := suite.reviews.CreateReview(suite.ctx, review)

	suite.Error(err)
	suite.True(errors.IsInvalidArgument(err))
}

func (suite *ReviewServiceTestSuite) TestRatingLifecycle() {
	// No reviews yet: rating is unset.
	suite.Nil(suite.movie.Rating)

	// First review sets the rating to its own value.
	first := testutil.NewTestReview(suite.movie.ID, suite.user.ID, 8)
	suite.Require().NoError(suite.reviews.CreateReview(suite.ctx, first))
	suite.Require().NotNil(suite.movie.Rating)
	suite.InDelta(8.0, *suite.movie.Rating, 1e-9)

	// Second review moves it to the mean.
	second := testutil.NewTestReview(suite.movie.ID, suite.user2.ID, 6)
	suite.Require().NoError(suite.reviews.CreateReview(suite.ctx, second))
	suite.Require().NotNil(suite.movie.Rating)
	suite.InDelta(7.0, *suite.movie.Rating, 1e-9)

	// Deleting the first review leaves only the second.
	suite.Require().NoError(suite.reviews.DeleteReview(suite.ctx, first.ID))
	suite.Require().NotNil(suite.movie.Rating)
	suite.InDelta(6.0, *suite.movie.Rating, 1e-9)

	// Deleting the last review clears the rating entirely.
	suite.Require().NoError(suite.reviews.DeleteReview(suite.ctx, second.ID))
	suite.Nil(suite.movie.Rating)
}

func (suite *ReviewServiceTestSuite) TestReviewMutations_RefreshCachedMovie() {
	// Prime the cache with the unrated movie.
	cached, err := suite.catalog.GetMovie(suite.ctx, suite.movie.ID)
	suite.Require().NoError(err)
	suite.Nil(cached.Rating)

	review := testutil.NewTestReview(suite.movie.ID, suite.user.ID, 8)
	suite.Require().NoError(suite.reviews.CreateReview(suite.ctx, review))

	// The cached copy was dropped with the recompute, so the read
	// serves the fresh rating instead of the stale nil.
	fresh, err := suite.catalog.GetMovie(suite.ctx, suite.movie.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(fresh.Rating)
	suite.InDelta(8.0, *fresh.Rating, 1e-9)

	// Deleting the last review clears it again, through the cache.
	suite.Require().NoError(suite.reviews.DeleteReview(suite.ctx, review.ID))
	fresh, err = suite.catalog.GetMovie(suite.ctx, suite.movie.ID)
	suite.Require().NoError(err)
	suite.Nil(fresh.Rating)
}

func (suite *ReviewServiceTestSuite) TestUpdateReview_RecomputesRating() {
	review := testutil.NewTestReview(suite.movie.ID, suite.user.ID, 8)
	suite.Require().NoError(suite.reviews.CreateReview(suite.ctx, review))

	updated, err := suite.reviews.UpdateReview(suite.ctx, review.ID, 4, "changed my mind")

	suite.NoError(err)
	suite.InDelta(4.0, updated.Rating, 1e-9)
	suite.Require().NotNil(suite.movie.Rating)
	suite.InDelta(4.0, *suite.movie.Rating, 1e-9)
}

func (suite *ReviewServiceTestSuite) TestUpdateReview_NotFound() {
	_, err := suite.reviews.UpdateReview(suite.ctx, uuid.New(), 5, "")

	suite.Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *ReviewServiceTestSuite) TestUpdateReview_RatingOutOfRange() {
	review := testutil.NewTestReview(suite.movie.ID, suite.user.ID, 8)
	suite.Require().NoError(suite.reviews.CreateReview(suite.ctx, review))

	_, err := suite.reviews.UpdateReview(suite.ctx, review.ID, -1, "")

	suite.Error(err)
	suite.True(errors.IsInvalidArgument(err))
	// The stored review and the derived rating are untouched.
	suite.Require().NotNil(suite.movie.Rating)
	suite.InDelta(8.0, *suite.movie.Rating, 1e-9)
}

func (suite *ReviewServiceTestSuite) TestDeleteReview_NotFound() {
	err := suite.reviews.DeleteReview(suite.ctx, uuid.New())

	suite.Error(err)
	suite.True(errors.IsNotFound(err))
}

func TestReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}
