package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/cineflix/dbservice/internal/catalog/repository"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/test/testutil"
)

type GormRepositoryTestSuite struct {
	suite.Suite

	container *testutil.PostgresContainer
	repo      repository.Repository
	ctx       context.Context
}

func (suite *GormRepositoryTestSuite) SetupSuite() {
	suite.ctx = context.Background()
	suite.container = testutil.SetupPostgresContainer(suite.T())

	err := suite.container.MigrateModels(repository.Models()...)
	suite.Require().NoError(err)
}

func (suite *GormRepositoryTestSuite) SetupTest() {
	suite.repo = repository.NewGormRepository(suite.container.DB)
	suite.container.TruncateTables("movie_genres", "movie_directors", "movie_actors", "movies")
}

func (suite *GormRepositoryTestSuite) TestCreate_RoundTrip() {
	movie := testutil.NewTestMovie("Arrival")
	movie.Genres = []string{"Drama", "Sci-Fi"}
	movie.Actors = []string{"Amy Adams", "Jeremy Renner"}

	err := suite.repo.Create(suite.ctx, movie)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.GetByID(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Equal("Arrival", retrieved.Title)
	suite.ElementsMatch([]string{"Drama", "Sci-Fi"}, retrieved.Genres)
	suite.ElementsMatch([]string{"Amy Adams", "Jeremy Renner"}, retrieved.Actors)
	suite.ElementsMatch([]string{"Denis Villeneuve"}, retrieved.Directors)
	suite.Nil(retrieved.Rating)
}

func (suite *GormRepositoryTestSuite) TestCreate_DuplicateTitle() {
	first := testutil.NewTestMovie("Arrival")
	second := testutil.NewTestMovie("Arrival")

	suite.Require().NoError(suite.repo.Create(suite.ctx, first))
	err := suite.repo.Create(suite.ctx, second)

	suite.Require().Error(err)
	suite.True(errors.IsAlreadyExists(err))
}

func (suite *GormRepositoryTestSuite) TestCreate_DuplicateAttributeValues() {
	movie := testutil.NewTestMovie("Arrival")
	movie.Genres = []string{"Drama", "Drama"}

	err := suite.repo.Create(suite.ctx, movie)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.GetByID(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"Drama"}, retrieved.Genres)
}

func (suite *GormRepositoryTestSuite) TestGetByTitle() {
	movie := testutil.NewTestMovie("Arrival")
	suite.Require().NoError(suite.repo.Create(suite.ctx, movie))

	retrieved, err := suite.repo.GetByTitle(suite.ctx, "Arrival")
	suite.Require().NoError(err)
	suite.Equal(movie.ID, retrieved.ID)

	_, err = suite.repo.GetByTitle(suite.ctx, "Dune")
	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *GormRepositoryTestSuite) TestFilteredListings() {
	arrival := testutil.NewTestMovie("Arrival")
	arrival.Genres = []string{"Drama", "Sci-Fi"}

	dune := testutil.NewTestMovie("Dune")
	dune.Genres = []string{"Sci-Fi"}
	dune.Actors = []string{"Timothee Chalamet"}

	heat := testutil.NewTestMovie("Heat")
	heat.Genres = []string{"Crime"}
	heat.Directors = []string{"Michael Mann"}
	heat.Actors = []string{"Al Pacino"}

	suite.Require().NoError(suite.repo.Create(suite.ctx, arrival))
	suite.Require().NoError(suite.repo.Create(suite.ctx, dune))
	suite.Require().NoError(suite.repo.Create(suite.ctx, heat))

	byGenre, err := suite.repo.ListByGenre(suite.ctx, "Sci-Fi")
	suite.Require().NoError(err)
	suite.Len(byGenre, 2)
	suite.Equal("Arrival", byGenre[0].Title)
	suite.Equal("Dune", byGenre[1].Title)

	byDirector, err := suite.repo.ListByDirector(suite.ctx, "Michael Mann")
	suite.Require().NoError(err)
	suite.Len(byDirector, 1)
	suite.Equal("Heat", byDirector[0].Title)

	byActor, err := suite.repo.ListByActor(suite.ctx, "Al Pacino")
	suite.Require().NoError(err)
	suite.Len(byActor, 1)

	none, err := suite.repo.ListByGenre(suite.ctx, "Musical")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *GormRepositoryTestSuite) TestUpdate_ReplacesAttributeSets() {
	movie := testutil.NewTestMovie("Arrival")
	movie.Genres = []string{"Drama"}
	suite.Require().NoError(suite.repo.Create(suite.ctx, movie))

	movie.Genres = []string{"Sci-Fi", "Mystery"}
	movie.RunTime = 120
	suite.Require().NoError(suite.repo.Update(suite.ctx, movie))

	retrieved, err := suite.repo.GetByID(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]string{"Sci-Fi", "Mystery"}, retrieved.Genres)
	suite.Equal(120, retrieved.RunTime)
}

func (suite *GormRepositoryTestSuite) TestUpdate_DoesNotTouchRating() {
	movie := testutil.NewTestMovie("Arrival")
	suite.Require().NoError(suite.repo.Create(suite.ctx, movie))

	rating := 7.5
	suite.Require().NoError(suite.repo.UpdateRating(suite.ctx, movie.ID, &rating))

	movie.Description = "updated"
	suite.Require().NoError(suite.repo.Update(suite.ctx, movie))

	retrieved, err := suite.repo.GetByID(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Rating)
	suite.InDelta(7.5, *retrieved.Rating, 1e-9)
}

func (suite *GormRepositoryTestSuite) TestUpdate_NotFound() {
	movie := testutil.NewTestMovie("Ghost")

	err := suite.repo.Update(suite.ctx, movie)

	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *GormRepositoryTestSuite) TestUpdateRating_Clear() {
	movie := testutil.NewTestMovie("Arrival")
	suite.Require().NoError(suite.repo.Create(suite.ctx, movie))

	rating := 8.0
	suite.Require().NoError(suite.repo.UpdateRating(suite.ctx, movie.ID, &rating))
	suite.Require().NoError(suite.repo.UpdateRating(suite.ctx, movie.ID, nil))

	retrieved, err := suite.repo.GetByID(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Nil(retrieved.Rating)
}

func (suite *GormRepositoryTestSuite) TestDelete() {
	movie := testutil.NewTestMovie("Arrival")
	suite.Require().NoError(suite.repo.Create(suite.ctx, movie))

	suite.Require().NoError(suite.repo.Delete(suite.ctx, movie.ID))

	_, err := suite.repo.GetByID(suite.ctx, movie.ID)
	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))

	err = suite.repo.Delete(suite.ctx, movie.ID)
	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *GormRepositoryTestSuite) TestExists() {
	movie := testutil.NewTestMovie("Arrival")
	suite.Require().NoError(suite.repo.Create(suite.ctx, movie))

	exists, err := suite.repo.Exists(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(suite.ctx, uuid.New())
	suite.Require().NoError(err)
	suite.False(exists)

	taken, err := suite.repo.ExistsByTitle(suite.ctx, "Arrival")
	suite.Require().NoError(err)
	suite.True(taken)
}

func TestGormRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}
