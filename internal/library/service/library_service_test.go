package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	accountrepo "github.com/cineflix/dbservice/internal/account/repository"
	catalogrepo "github.com/cineflix/dbservice/internal/catalog/repository"
	"github.com/cineflix/dbservice/internal/library/domain"
	"github.com/cineflix/dbservice/internal/library/service"
	"github.com/cineflix/dbservice/pkg/events"
	"github.com/cineflix/dbservice/pkg/logger"
)

// MockListRepository is a mock for a per-user movie list repository
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Add(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockListRepository) Remove(ctx context.Context, userID, movieID uuid.UUID) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockListRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.Entry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockListRepository) Contains(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

// existsMovieRepo answers Exists from a fixed set of known movie IDs.
type existsMovieRepo struct {
	catalogrepo.Repository

	known map[uuid.UUID]bool
}

func (r *existsMovieRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.known[id], nil
}

// existsUserRepo answers Exists from a fixed set of known user IDs.
type existsUserRepo struct {
	accountrepo.Repository

	known map[uuid.UUID]bool
}

func (r *existsUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.known[id], nil
}

type LibraryServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	favorites    *MockListRepository
	watchList    *MockListRepository
	library      *service.LibraryService
	knownUser    uuid.UUID
	knownMovie   uuid.UUID
	unknownUser  uuid.UUID
	unknownMovie uuid.UUID
}

func (suite *LibraryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.favorites = new(MockListRepository)
	suite.watchList = new(MockListRepository)
	suite.knownUser = uuid.New()
	suite.knownMovie = uuid.New()
	suite.unknownUser = uuid.New()
	suite.unknownMovie = uuid.New()

	movies := &existsMovieRepo{known: map[uuid.UUID]bool{suite.knownMovie: true}}
	users := &existsUserRepo{known: map[uuid.UUID]bool{suite.knownUser: true}}

	suite.library = service.NewLibraryService(
		suite.favorites,
		suite.watchList,
		movies,
		users,
		events.NewLocalEventBus(logger.NewNoopLogger()),
		logger.NewNoopLogger(),
	)
}

func (suite *LibraryServiceTestSuite) TearDownTest() {
	suite.favorites.AssertExpectations(suite.T())
	suite.watchList.AssertExpectations(suite.T())
}

func (suite *LibraryServiceTestSuite) TestAddFavorite_Success() {
	suite.favorites.On("Add", suite.ctx, suite.knownUser, suite.knownMovie).Return(true, nil)

	added, err := suite.library.AddFavorite(suite.ctx, suite.knownUser, suite.knownMovie)

	suite.NoError(err)
	suite.True(added)
}

func (suite *LibraryServiceTestSuite) TestAddFavorite_MissingUser() {
	added, err := suite.library.AddFavorite(suite.ctx, suite.unknownUser, suite.knownMovie)

	suite.NoError(err)
	suite.False(added)
	suite.favorites.AssertNotCalled(suite.T(), "Add", suite.ctx, suite.unknownUser, suite.knownMovie)
}

func (suite *LibraryServiceTestSuite) TestAddFavorite_MissingMovie() {
	added, err := suite.library.AddFavorite(suite.ctx, suite.knownUser, suite.unknownMovie)

	suite.NoError(err)
	suite.False(added)
}

func (suite *LibraryServiceTestSuite) TestAddFavorite_Duplicate() {
	suite.favorites.On("Add", suite.ctx, suite.knownUser, suite.knownMovie).Return(false, nil)

	added, err := suite.library.AddFavorite(suite.ctx, suite.knownUser, suite.knownMovie)

	suite.NoError(err)
	suite.False(added)
}

func (suite *LibraryServiceTestSuite) TestRemoveFavorite_Idempotent() {
	suite.favorites.On("Remove", suite.ctx, suite.knownUser, suite.knownMovie).Return(nil)

	// Removing an entry that may not exist is still a success.
	err := suite.library.RemoveFavorite(suite.ctx, suite.knownUser, suite.knownMovie)

	suite.NoError(err)
}

func (suite *LibraryServiceTestSuite) TestAddWatchListMovie_Duplicate() {
	suite.watchList.On("Add", suite.ctx, suite.knownUser, suite.knownMovie).Return(false, nil)

	added, err := suite.library.AddWatchListMovie(suite.ctx, suite.knownUser, suite.knownMovie)

	suite.NoError(err)
	suite.False(added)
}

func (suite *LibraryServiceTestSuite) TestListFavorites() {
	entries := []domain.Entry{
		{ID: uuid.New(), UserID: suite.knownUser, MovieID: uuid.New()},
		{ID: uuid.New(), UserID: suite.knownUser, MovieID: uuid.New()},
	}
	suite.favorites.On("List", suite.ctx, suite.knownUser).Return(entries, nil)

	listed, err := suite.library.ListFavorites(suite.ctx, suite.knownUser)

	suite.NoError(err)
	suite.Equal([]uuid.UUID{entries[0].MovieID, entries[1].MovieID}, listed)
}

func (suite *LibraryServiceTestSuite) TestListWatchListMovies_Empty() {
	suite.watchList.On("List", suite.ctx, suite.knownUser).Return([]domain.Entry{}, nil)

	listed, err := suite.library.ListWatchListMovies(suite.ctx, suite.knownUser)

	suite.NoError(err)
	suite.Empty(listed)
}

func TestLibraryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LibraryServiceTestSuite))
}
