package storage_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	accountrepo "github.com/cineflix/dbservice/internal/account/repository"
	catalogrepo "github.com/cineflix/dbservice/internal/catalog/repository"
	reviewrepo "github.com/cineflix/dbservice/internal/review/repository"
	"github.com/cineflix/dbservice/internal/storage"
	"github.com/cineflix/dbservice/pkg/database"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/test/testutil"
)

type UnitOfWorkTestSuite struct {
	suite.Suite

	container *testutil.PostgresContainer
	uow       storage.UnitOfWork
	ctx       context.Context
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	suite.ctx = context.Background()
	suite.container = testutil.SetupPostgresContainer(suite.T())

	var models []interface{}
	models = append(models, catalogrepo.Models()...)
	models = append(models, accountrepo.Models()...)
	models = append(models, reviewrepo.Models()...)
	err := suite.container.MigrateModels(models...)
	suite.Require().NoError(err)

	err = database.EnsureForeignKeys(suite.container.DB, reviewrepo.ForeignKeys()...)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.uow = storage.NewGormUnitOfWork(suite.container.DB)
	suite.container.TruncateTables("reviews", "movie_genres", "movie_directors", "movie_actors", "movies", "users")
}

func (suite *UnitOfWorkTestSuite) TestExecute_CommitsOnSuccess() {
	movie := testutil.NewTestMovie("Arrival")
	user := testutil.NewTestUser("alice", "alice@example.com")

	err := suite.uow.Execute(suite.ctx, func(repos storage.Repositories) error {
		if err := repos.Catalog.Create(suite.ctx, movie); err != nil {
			return err
		}
		if err := repos.Accounts.Create(suite.ctx, user); err != nil {
			return err
		}
		return repos.Reviews.Create(suite.ctx, testutil.NewTestReview(movie.ID, user.ID, 8))
	})
	suite.Require().NoError(err)

	repo := reviewrepo.NewGormRepository(suite.container.DB)
	reviews, err := repo.ListByMovie(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Len(reviews, 1)
}

func (suite *UnitOfWorkTestSuite) TestExecute_RollsBackOnError() {
	movie := testutil.NewTestMovie("Arrival")

	err := suite.uow.Execute(suite.ctx, func(repos storage.Repositories) error {
		if err := repos.Catalog.Create(suite.ctx, movie); err != nil {
			return err
		}
		return errors.Internal("boom")
	})
	suite.Require().Error(err)

	// The movie insert was rolled back along with the failure.
	repo := catalogrepo.NewGormRepository(suite.container.DB)
	_, err = repo.GetByID(suite.ctx, movie.ID)
	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *UnitOfWorkTestSuite) TestExecute_RejectsReviewForMissingUser() {
	movie := testutil.NewTestMovie("Arrival")

	err := suite.uow.Execute(suite.ctx, func(repos storage.Repositories) error {
		if err := repos.Catalog.Create(suite.ctx, movie); err != nil {
			return err
		}
		return repos.Reviews.Create(suite.ctx, testutil.NewTestReview(movie.ID, uuid.New(), 8))
	})
	suite.Require().Error(err)

	// The ownership constraint aborted the transaction as a whole.
	repo := catalogrepo.NewGormRepository(suite.container.DB)
	_, err = repo.GetByID(suite.ctx, movie.ID)
	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *UnitOfWorkTestSuite) TestExecute_UserCascadeClearsReviewsFirst() {
	movie := testutil.NewTestMovie("Arrival")
	user := testutil.NewTestUser("alice", "alice@example.com")

	err := suite.uow.Execute(suite.ctx, func(repos storage.Repositories) error {
		if err := repos.Catalog.Create(suite.ctx, movie); err != nil {
			return err
		}
		if err := repos.Accounts.Create(suite.ctx, user); err != nil {
			return err
		}
		return repos.Reviews.Create(suite.ctx, testutil.NewTestReview(movie.ID, user.ID, 8))
	})
	suite.Require().NoError(err)

	// Reviews go before the user, so the ownership constraint never
	// blocks the account delete.
	err = suite.uow.Execute(suite.ctx, func(repos storage.Repositories) error {
		if _, err := repos.Reviews.DeleteByUser(suite.ctx, user.ID); err != nil {
			return err
		}
		return repos.Accounts.Delete(suite.ctx, user.ID)
	})
	suite.Require().NoError(err)

	repo := reviewrepo.NewGormRepository(suite.container.DB)
	reviews, err := repo.ListByMovie(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Empty(reviews)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
