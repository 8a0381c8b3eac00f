package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/cineflix/dbservice/internal/library/repository"
	"github.com/cineflix/dbservice/test/testutil"
)

type GormRepositoryTestSuite struct {
	suite.Suite

	container *testutil.PostgresContainer
	favorites repository.ListRepository
	watchList repository.ListRepository
	ctx       context.Context
}

func (suite *GormRepositoryTestSuite) SetupSuite() {
	suite.ctx = context.Background()
	suite.container = testutil.SetupPostgresContainer(suite.T())

	err := suite.container.MigrateModels(repository.Models()...)
	suite.Require().NoError(err)
}

func (suite *GormRepositoryTestSuite) SetupTest() {
	suite.favorites = repository.NewGormFavoriteRepository(suite.container.DB)
	suite.watchList = repository.NewGormWatchListRepository(suite.container.DB)
	suite.container.TruncateTables("favorites", "watch_list")
}

func (suite *GormRepositoryTestSuite) TestAdd_Duplicate() {
	userID := uuid.New()
	movieID := uuid.New()

	added, err := suite.favorites.Add(suite.ctx, userID, movieID)
	suite.Require().NoError(err)
	suite.True(added)

	// The unique (user, movie) index turns the second insert into a no-op.
	added, err = suite.favorites.Add(suite.ctx, userID, movieID)
	suite.Require().NoError(err)
	suite.False(added)
}

func (suite *GormRepositoryTestSuite) TestListsAreIndependent() {
	userID := uuid.New()
	movieID := uuid.New()

	added, err := suite.favorites.Add(suite.ctx, userID, movieID)
	suite.Require().NoError(err)
	suite.True(added)

	// The same pair is still free on the watch list.
	added, err = suite.watchList.Add(suite.ctx, userID, movieID)
	suite.Require().NoError(err)
	suite.True(added)
}

func (suite *GormRepositoryTestSuite) TestList() {
	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	_, err := suite.favorites.Add(suite.ctx, userID, first)
	suite.Require().NoError(err)
	_, err = suite.favorites.Add(suite.ctx, userID, second)
	suite.Require().NoError(err)

	entries, err := suite.favorites.List(suite.ctx, userID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	movieIDs := []uuid.UUID{entries[0].MovieID, entries[1].MovieID}
	suite.ElementsMatch([]uuid.UUID{first, second}, movieIDs)
	for _, entry := range entries {
		suite.Equal(userID, entry.UserID)
		suite.NotEqual(uuid.Nil, entry.ID)
		suite.False(entry.AddedOn.IsZero())
	}

	other, err := suite.favorites.List(suite.ctx, uuid.New())
	suite.Require().NoError(err)
	suite.Empty(other)
}

func (suite *GormRepositoryTestSuite) TestRemove_Idempotent() {
	userID := uuid.New()
	movieID := uuid.New()

	_, err := suite.favorites.Add(suite.ctx, userID, movieID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.favorites.Remove(suite.ctx, userID, movieID))
	// Removing again is not an error.
	suite.Require().NoError(suite.favorites.Remove(suite.ctx, userID, movieID))

	contains, err := suite.favorites.Contains(suite.ctx, userID, movieID)
	suite.Require().NoError(err)
	suite.False(contains)
}

func (suite *GormRepositoryTestSuite) TestContains() {
	userID := uuid.New()
	movieID := uuid.New()

	contains, err := suite.watchList.Contains(suite.ctx, userID, movieID)
	suite.Require().NoError(err)
	suite.False(contains)

	_, err = suite.watchList.Add(suite.ctx, userID, movieID)
	suite.Require().NoError(err)

	contains, err = suite.watchList.Contains(suite.ctx, userID, movieID)
	suite.Require().NoError(err)
	suite.True(contains)
}

func TestGormRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}
