package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/cineflix/dbservice/internal/review/repository"
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
	suite.container.TruncateTables("reviews")
}

func (suite *GormRepositoryTestSuite) TestCreate_RoundTrip() {
	review := testutil.NewTestReview(uuid.New(), uuid.New(), 8)

	err := suite.repo.Create(suite.ctx, review)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.GetByID(suite.ctx, review.ID)
	suite.Require().NoError(err)
	suite.Equal(review.MovieID, retrieved.MovieID)
	suite.Equal(review.UserID, retrieved.UserID)
	suite.InDelta(8.0, retrieved.Rating, 1e-9)
	suite.Equal("solid", retrieved.Comment)
}

func (suite *GormRepositoryTestSuite) TestListByMovieAndUser() {
	movieID := uuid.New()
	userID := uuid.New()

	suite.Require().NoError(suite.repo.Create(suite.ctx, testutil.NewTestReview(movieID, userID, 8)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, testutil.NewTestReview(movieID, uuid.New(), 6)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, testutil.NewTestReview(uuid.New(), userID, 4)))

	byMovie, err := suite.repo.ListByMovie(suite.ctx, movieID)
	suite.Require().NoError(err)
	suite.Len(byMovie, 2)

	byUser, err := suite.repo.ListByUser(suite.ctx, userID)
	suite.Require().NoError(err)
	suite.Len(byUser, 2)

	empty, err := suite.repo.ListByMovie(suite.ctx, uuid.New())
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *GormRepositoryTestSuite) TestUpdate() {
	review := testutil.NewTestReview(uuid.New(), uuid.New(), 8)
	suite.Require().NoError(suite.repo.Create(suite.ctx, review))

	review.Rating = 5
	review.Comment = "on rewatch, weaker"
	suite.Require().NoError(suite.repo.Update(suite.ctx, review))

	retrieved, err := suite.repo.GetByID(suite.ctx, review.ID)
	suite.Require().NoError(err)
	suite.InDelta(5.0, retrieved.Rating, 1e-9)
	suite.Equal("on rewatch, weaker", retrieved.Comment)
}

func (suite *GormRepositoryTestSuite) TestUpdate_NotFound() {
	review := testutil.NewTestReview(uuid.New(), uuid.New(), 8)

	err := suite.repo.Update(suite.ctx, review)

	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *GormRepositoryTestSuite) TestDelete() {
	review := testutil.NewTestReview(uuid.New(), uuid.New(), 8)
	suite.Require().NoError(suite.repo.Create(suite.ctx, review))

	suite.Require().NoError(suite.repo.Delete(suite.ctx, review.ID))

	err := suite.repo.Delete(suite.ctx, review.ID)
	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *GormRepositoryTestSuite) TestDeleteByUser() {
	userID := uuid.New()
	movieA := uuid.New()
	movieB := uuid.New()

	suite.Require().NoError(suite.repo.Create(suite.ctx, testutil.NewTestReview(movieA, userID, 8)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, testutil.NewTestReview(movieA, userID, 7)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, testutil.NewTestReview(movieB, userID, 6)))
	kept := testutil.NewTestReview(movieA, uuid.New(), 5)
	suite.Require().NoError(suite.repo.Create(suite.ctx, kept))

	movieIDs, err := suite.repo.DeleteByUser(suite.ctx, userID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{movieA, movieB}, movieIDs)

	remaining, err := suite.repo.ListByUser(suite.ctx, userID)
	suite.Require().NoError(err)
	suite.Empty(remaining)

	others, err := suite.repo.ListByMovie(suite.ctx, movieA)
	suite.Require().NoError(err)
	suite.Len(others, 1)
	suite.Equal(kept.ID, others[0].ID)
}

func (suite *GormRepositoryTestSuite) TestDeleteByUser_NoReviews() {
	movieIDs, err := suite.repo.DeleteByUser(suite.ctx, uuid.New())

	suite.Require().NoError(err)
	suite.Empty(movieIDs)
}

func TestGormRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}
