package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/cineflix/dbservice/internal/account/domain"
	accountrepo "github.com/cineflix/dbservice/internal/account/repository"
	"github.com/cineflix/dbservice/internal/account/service"
	catalogdomain "github.com/cineflix/dbservice/internal/catalog/domain"
	catalogrepo "github.com/cineflix/dbservice/internal/catalog/repository"
	catalogservice "github.com/cineflix/dbservice/internal/catalog/service"
	reviewdomain "github.com/cineflix/dbservice/internal/review/domain"
	reviewrepo "github.com/cineflix/dbservice/internal/review/repository"
	"github.com/cineflix/dbservice/internal/storage"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/events"
	"github.com/cineflix/dbservice/pkg/logger"
	"github.com/cineflix/dbservice/pkg/utils"
	"github.com/cineflix/dbservice/test/testutil"
)

// fakeAccountStore is an in-memory account repository with enough of
// the review and catalog sides to exercise the delete cascade.
type fakeAccountStore struct {
	users   map[uuid.UUID]*domain.User
	reviews map[uuid.UUID]*reviewdomain.Review
	movies  map[uuid.UUID]*catalogdomain.Movie
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		users:   make(map[uuid.UUID]*domain.User),
		reviews: make(map[uuid.UUID]*reviewdomain.Review),
		movies:  make(map[uuid.UUID]*catalogdomain.Movie),
	}
}

type fakeUserRepo struct {
	accountrepo.Repository

	store *fakeAccountStore
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	copied := *user
	f.store.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.store.users[id]
	if !ok {
		return nil, errors.NotFound("user not found")
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := f.store.users[user.ID]; !ok {
		return errors.NotFound("user not found")
	}
	copied := *user
	f.store.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.store.users[id]; !ok {
		return errors.NotFound("user not found")
	}
	delete(f.store.users, id)
	return nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.store.users[id]
	return ok, nil
}

func (f *fakeUserRepo) EmailTaken(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	for id, user := range f.store.users {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UsernameTaken(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error) {
	for id, user := range f.store.users {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserReviewRepo struct {
	reviewrepo.Repository

	store *fakeAccountStore
}

func (f *fakeUserReviewRepo) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*reviewdomain.Review, error) {
	var out []*reviewdomain.Review
	for _, review := range f.store.reviews {
		if review.MovieID == movieID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (f *fakeUserReviewRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*reviewdomain.Review, error) {
	var out []*reviewdomain.Review
	for _, review := range f.store.reviews {
		if review.UserID == userID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (f *fakeUserReviewRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{})
	var movieIDs []uuid.UUID
	for id, review := range f.store.reviews {
		if review.UserID != userID {
			continue
		}
		if _, ok := seen[review.MovieID]; !ok {
			seen[review.MovieID] = struct{}{}
			movieIDs = append(movieIDs, review.MovieID)
		}
		delete(f.store.reviews, id)
	}
	return movieIDs, nil
}

type fakeMovieRepo struct {
	catalogrepo.Repository

	store *fakeAccountStore
}

func (f *fakeMovieRepo) UpdateRating(ctx context.Context, id uuid.UUID, rating *float64) error {
	movie, ok := f.store.movies[id]
	if !ok {
		return errors.NotFound("movie not found")
	}
	movie.Rating = rating
	return nil
}

type AccountServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *fakeAccountStore
	cache    *utils.InMemoryCache
	accounts *service.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newFakeAccountStore()
	suite.cache = utils.NewInMemoryCache()

	userRepo := &fakeUserRepo{store: suite.store}
	uow := &fakeUnitOfWork{repos: storage.Repositories{
		Catalog:  &fakeMovieRepo{store: suite.store},
		Accounts: userRepo,
		Reviews:  &fakeUserReviewRepo{store: suite.store},
	}}

	suite.accounts = service.NewAccountService(
		userRepo,
		uow,
		events.NewLocalEventBus(logger.NewNoopLogger()),
		suite.cache,
		logger.NewNoopLogger(),
	)
}

// fakeUnitOfWork hands the fake repositories straight to the callback.
type fakeUnitOfWork struct {
	repos storage.Repositories
}

func (f *fakeUnitOfWork) Execute(ctx context.Context, fn func(repos storage.Repositories) error) error {
	return fn(f.repos)
}

func (suite *AccountServiceTestSuite) TestCreateUser_Success() {
	user := testutil.NewTestUser("alice", "alice@example.com")
	user.ID = uuid.Nil

	err := suite.accounts.CreateUser(suite.ctx, user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
}

func (suite *AccountServiceTestSuite) TestCreateUser_EmailCollisionReportedFirst() {
	existing := testutil.NewTestUser("alice", "alice@example.com")
	suite.store.users[existing.ID] = existing

	// Collides on both email and username; the email wins.
	user := testutil.NewTestUser("alice", "alice@example.com")
	err := suite.accounts.CreateUser(suite.ctx, user)

	suite.Error(err)
	suite.True(errors.IsAlreadyInUse(err))
	suite.Contains(err.Error(), "email")
}

func (suite *AccountServiceTestSuite) TestCreateUser_UsernameCollision() {
	existing := testutil.NewTestUser("alice", "alice@example.com")
	suite.store.users[existing.ID] = existing

	user := testutil.NewTestUser("alice", "other@example.com")
	err := suite.accounts.CreateUser(suite.ctx, user)

	suite.Error(err)
	suite.True(errors.IsAlreadyInUse(err))
	suite.Contains(err.Error(), "username")
}

func (suite *AccountServiceTestSuite) TestCreateUser_InvalidEmail() {
	user := testutil.NewTestUser("alice", "not-an-email")

	err := suite.accounts.CreateUser(suite.ctx, user)

	suite.Error(err)
	suite.True(errors.IsInvalidArgument(err))
}

func (suite *AccountServiceTestSuite) TestCreateUser_UnknownRole() {
	user := testutil.NewTestUser("alice", "alice@example.com")
	user.Role = domain.Role("SUPERVISOR")

	err := suite.accounts.CreateUser(suite.ctx, user)

	suite.Error(err)
	suite.True(errors.IsInvalidArgument(err))
}

func (suite *AccountServiceTestSuite) TestUpdateUser_ExcludesSelfFromUniqueness() {
	user := testutil.NewTestUser("alice", "alice@example.com")
	suite.store.users[user.ID] = user

	// Same email and username, new password: no collision with itself.
	updated := testutil.NewTestUser("alice", "alice@example.com")
	updated.ID = user.ID
	updated.HashedPassword = "$2a$10$changed"

	result, err := suite.accounts.UpdateUser(suite.ctx, updated)

	suite.NoError(err)
	suite.Equal("alice", result.Username)
}

func (suite *AccountServiceTestSuite) TestUpdateUser_EmailTakenByOther() {
	alice := testutil.NewTestUser("alice", "alice@example.com")
	bob := testutil.NewTestUser("bob", "bob@example.com")
	suite.store.users[alice.ID] = alice
	suite.store.users[bob.ID] = bob

	updated := testutil.NewTestUser("bob", "alice@example.com")
	updated.ID = bob.ID

	_, err := suite.accounts.UpdateUser(suite.ctx, updated)

	suite.Error(err)
	suite.True(errors.IsAlreadyInUse(err))
	suite.Contains(err.Error(), "email")
}

func (suite *AccountServiceTestSuite) TestDeleteUser_CascadesToReviews() {
	user := testutil.NewTestUser("alice", "alice@example.com")
	movie := testutil.NewTestMovie("Arrival")
	rating := 8.0
	movie.Rating = &rating
	suite.store.users[user.ID] = user
	suite.store.movies[movie.ID] = movie

	review := testutil.NewTestReview(movie.ID, user.ID, 8)
	suite.store.reviews[review.ID] = review

	err := suite.accounts.DeleteUser(suite.ctx, user.ID)

	suite.NoError(err)
	suite.Empty(suite.store.reviews)
	suite.NotContains(suite.store.users, user.ID)
	// The movie's derived rating reflects the emptied review set.
	suite.Nil(movie.Rating)
}

func (suite *AccountServiceTestSuite) TestDeleteUser_DropsCachedMovies() {
	user := testutil.NewTestUser("alice", "alice@example.com")
	movie := testutil.NewTestMovie("Arrival")
	rating := 8.0
	movie.Rating = &rating
	suite.store.users[user.ID] = user
	suite.store.movies[movie.ID] = movie

	review := testutil.NewTestReview(movie.ID, user.ID, 8)
	suite.store.reviews[review.ID] = review

	// A cached copy still carrying the pre-delete rating.
	key := catalogservice.MovieCacheKey(movie.ID)
	suite.Require().NoError(suite.cache.Set(suite.ctx, key, movie, time.Minute))

	suite.Require().NoError(suite.accounts.DeleteUser(suite.ctx, user.ID))

	_, err := suite.cache.Get(suite.ctx, key)
	suite.ErrorIs(err, utils.ErrCacheMiss)
}

func (suite *AccountServiceTestSuite) TestDeleteUser_NotFound() {
	err := suite.accounts.DeleteUser(suite.ctx, uuid.New())

	suite.Error(err)
	suite.True(errors.IsNotFound(err))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
