package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cineflix/dbservice/internal/catalog/domain"
	"github.com/cineflix/dbservice/internal/catalog/service"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/events"
	"github.com/cineflix/dbservice/pkg/logger"
	"github.com/cineflix/dbservice/pkg/utils"
	"github.com/cineflix/dbservice/test/testutil"
)

// MockMovieRepository is a mock for the catalog repository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) ListByGenre(ctx context.Context, genre string) ([]*domain.Movie, error) {
	args := m.Called(ctx, genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) ListByDirector(ctx context.Context, director string) ([]*domain.Movie, error) {
	args := m.Called(ctx, director)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) ListByActor(ctx context.Context, actor string) ([]*domain.Movie, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating *float64) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovieRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

type CatalogServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockMovieRepository
	catalog  *service.CatalogService
	cache    *utils.InMemoryCache
	eventBus *events.LocalEventBus
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockMovieRepository)
	suite.cache = utils.NewInMemoryCache()
	suite.eventBus = events.NewLocalEventBus(logger.NewNoopLogger())

	suite.catalog = service.NewCatalogService(
		suite.mockRepo,
		suite.eventBus,
		suite.cache,
		logger.NewNoopLogger(),
	)
}

func (suite *CatalogServiceTestSuite) TearDownTest() {
	time.Sleep(50 * time.Millisecond)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestCreateMovie_Success() {
	movie := testutil.NewTestMovie("Arrival")
	movie.ID = uuid.Nil

	suite.mockRepo.On("ExistsByTitle", suite.ctx, "Arrival").Return(false, nil)
	suite.mockRepo.On("Create", suite.ctx, mock.AnythingOfType("*domain.Movie")).Return(nil)

	err := suite.catalog.CreateMovie(suite.ctx, movie)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, movie.ID)
	suite.Nil(movie.Rating)
}

func (suite *CatalogServiceTestSuite) TestCreateMovie_IgnoresClientRating() {
	movie := testutil.NewTestMovie("Arrival")
	rating := 9.5
	movie.Rating = &rating

	suite.mockRepo.On("ExistsByTitle", suite.ctx, "Arrival").Return(false, nil)
	suite.mockRepo.On("Create", suite.ctx, mock.AnythingOfType("*domain.Movie")).Return(nil)

	err := suite.catalog.CreateMovie(suite.ctx, movie)

	suite.NoError(err)
	suite.Nil(movie.Rating)
}

func (suite *CatalogServiceTestSuite) TestCreateMovie_DuplicateTitle() {
	movie := testutil.NewTestMovie("Arrival")

	suite.mockRepo.On("ExistsByTitle", suite.ctx, "Arrival").Return(true, nil)

	err := suite.catalog.CreateMovie(suite.ctx, movie)

	suite.Error(err)
	suite.True(errors.IsAlreadyExists(err))
}

func (suite *CatalogServiceTestSuite) TestCreateMovie_InvalidRunTime() {
	movie := testutil.NewTestMovie("Arrival")
	movie.RunTime = 0

	err := suite.catalog.CreateMovie(suite.ctx, movie)

	suite.Error(err)
	suite.True(errors.IsInvalidArgument(err))
}

func (suite *CatalogServiceTestSuite) TestCreateMovie_BlankTitle() {
	movie := testutil.NewTestMovie("")

	err := suite.catalog.CreateMovie(suite.ctx, movie)

	suite.Error(err)
	suite.True(errors.IsInvalidArgument(err))
}

func (suite *CatalogServiceTestSuite) TestGetMovie_CachesResult() {
	movie := testutil.NewTestMovie("Arrival")

	suite.mockRepo.On("GetByID", suite.ctx, movie.ID).Return(movie, nil).Once()

	first, err := suite.catalog.GetMovie(suite.ctx, movie.ID)
	suite.NoError(err)
	suite.Equal(movie.Title, first.Title)

	// Second call is served from cache; the mock allows only one call.
	second, err := suite.catalog.GetMovie(suite.ctx, movie.ID)
	suite.NoError(err)
	suite.Equal(movie.Title, second.Title)
}

func (suite *CatalogServiceTestSuite) TestGetMovie_NotFound() {
	id := uuid.New()

	suite.mockRepo.On("GetByID", suite.ctx, id).Return(nil, errors.NotFound("movie not found"))

	_, err := suite.catalog.GetMovie(suite.ctx, id)

	suite.Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *CatalogServiceTestSuite) TestGetMovieByTitle_BlankTitle() {
	_, err := suite.catalog.GetMovieByTitle(suite.ctx, "")

	suite.Error(err)
	suite.True(errors.IsInvalidArgument(err))
}

func (suite *CatalogServiceTestSuite) TestUpdateMovie_TitleCollision() {
	existing := testutil.NewTestMovie("Arrival")
	updated := testutil.NewTestMovie("Dune")
	updated.ID = existing.ID

	suite.mockRepo.On("GetByID", suite.ctx, existing.ID).Return(existing, nil)
	suite.mockRepo.On("ExistsByTitle", suite.ctx, "Dune").Return(true, nil)

	_, err := suite.catalog.UpdateMovie(suite.ctx, updated)

	suite.Error(err)
	suite.True(errors.IsAlreadyExists(err))
}

func (suite *CatalogServiceTestSuite) TestUpdateMovie_SameTitleSkipsCheck() {
	existing := testutil.NewTestMovie("Arrival")
	updated := testutil.NewTestMovie("Arrival")
	updated.ID = existing.ID
	updated.RunTime = 120

	suite.mockRepo.On("GetByID", suite.ctx, existing.ID).Return(existing, nil).Twice()
	suite.mockRepo.On("Update", suite.ctx, mock.AnythingOfType("*domain.Movie")).Return(nil)

	_, err := suite.catalog.UpdateMovie(suite.ctx, updated)

	suite.NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "ExistsByTitle", suite.ctx, "Arrival")
}

func (suite *CatalogServiceTestSuite) TestDeleteMovie_NotFound() {
	id := uuid.New()

	suite.mockRepo.On("Delete", suite.ctx, id).Return(errors.NotFound("movie not found"))

	err := suite.catalog.DeleteMovie(suite.ctx, id)

	suite.Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *CatalogServiceTestSuite) TestDeleteMovie_InvalidatesCache() {
	movie := testutil.NewTestMovie("Arrival")

	suite.mockRepo.On("GetByID", suite.ctx, movie.ID).Return(movie, nil).Once()
	suite.mockRepo.On("Delete", suite.ctx, movie.ID).Return(nil)

	_, err := suite.catalog.GetMovie(suite.ctx, movie.ID)
	suite.NoError(err)

	err = suite.catalog.DeleteMovie(suite.ctx, movie.ID)
	suite.NoError(err)

	cached, _ := suite.cache.Get(suite.ctx, service.MovieCacheKey(movie.ID))
	suite.Nil(cached)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
