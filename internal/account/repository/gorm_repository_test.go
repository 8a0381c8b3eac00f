package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/cineflix/dbservice/internal/account/repository"
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
	suite.container.TruncateTables("users")
}

func (suite *GormRepositoryTestSuite) TestCreate_RoundTrip() {
	user := testutil.NewTestUser("alice", "alice@example.com")

	err := suite.repo.Create(suite.ctx, user)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("alice", retrieved.Username)
	suite.Equal("alice@example.com", retrieved.Email)
	suite.Equal(user.Role, retrieved.Role)
}

func (suite *GormRepositoryTestSuite) TestCreate_DuplicateEmail() {
	first := testutil.NewTestUser("alice", "alice@example.com")
	second := testutil.NewTestUser("alice2", "alice@example.com")

	suite.Require().NoError(suite.repo.Create(suite.ctx, first))
	err := suite.repo.Create(suite.ctx, second)

	suite.Require().Error(err)
	suite.True(errors.IsAlreadyInUse(err))
}

func (suite *GormRepositoryTestSuite) TestCreate_DuplicateUsernameAllowedByStorage() {
	// Username uniqueness is enforced by the service, not the schema.
	first := testutil.NewTestUser("alice", "alice@example.com")
	second := testutil.NewTestUser("alice", "alice2@example.com")

	suite.Require().NoError(suite.repo.Create(suite.ctx, first))
	suite.Require().NoError(suite.repo.Create(suite.ctx, second))
}

func (suite *GormRepositoryTestSuite) TestGetByUsernameAndEmail() {
	user := testutil.NewTestUser("alice", "alice@example.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	byUsername, err := suite.repo.GetByUsername(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal(user.ID, byUsername.ID)

	byEmail, err := suite.repo.GetByEmail(suite.ctx, "alice@example.com")
	suite.Require().NoError(err)
	suite.Equal(user.ID, byEmail.ID)

	_, err = suite.repo.GetByUsername(suite.ctx, "nobody")
	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *GormRepositoryTestSuite) TestUpdate() {
	user := testutil.NewTestUser("alice", "alice@example.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	user.Email = "new@example.com"
	suite.Require().NoError(suite.repo.Update(suite.ctx, user))

	retrieved, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("new@example.com", retrieved.Email)
}

func (suite *GormRepositoryTestSuite) TestUpdate_NotFound() {
	user := testutil.NewTestUser("ghost", "ghost@example.com")

	err := suite.repo.Update(suite.ctx, user)

	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *GormRepositoryTestSuite) TestTakenChecks() {
	user := testutil.NewTestUser("alice", "alice@example.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	emailTaken, err := suite.repo.EmailTaken(suite.ctx, "alice@example.com", nil)
	suite.Require().NoError(err)
	suite.True(emailTaken)

	// Excluding the owner clears the collision.
	emailTaken, err = suite.repo.EmailTaken(suite.ctx, "alice@example.com", &user.ID)
	suite.Require().NoError(err)
	suite.False(emailTaken)

	usernameTaken, err := suite.repo.UsernameTaken(suite.ctx, "alice", nil)
	suite.Require().NoError(err)
	suite.True(usernameTaken)

	usernameTaken, err = suite.repo.UsernameTaken(suite.ctx, "bob", nil)
	suite.Require().NoError(err)
	suite.False(usernameTaken)
}

func (suite *GormRepositoryTestSuite) TestDelete() {
	user := testutil.NewTestUser("alice", "alice@example.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	suite.Require().NoError(suite.repo.Delete(suite.ctx, user.ID))

	err := suite.repo.Delete(suite.ctx, user.ID)
	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *GormRepositoryTestSuite) TestExists() {
	user := testutil.NewTestUser("alice", "alice@example.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	exists, err := suite.repo.Exists(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(suite.ctx, uuid.New())
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestGormRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}
