package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/account/domain"
	"github.com/cineflix/dbservice/internal/account/repository"
	catalogservice "github.com/cineflix/dbservice/internal/catalog/service"
	reviewservice "github.com/cineflix/dbservice/internal/review/service"
	"github.com/cineflix/dbservice/internal/storage"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/events"
	"github.com/cineflix/dbservice/pkg/interfaces"
)

const userCacheTTL = 5 * time.Minute

// AccountService handles user account business logic
type AccountService struct {
	repo       repository.Repository
	uow        storage.UnitOfWork
	aggregator *reviewservice.RatingAggregator
	eventBus   interfaces.EventBus
	cache      interfaces.Cache
	logger     interfaces.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	repo repository.Repository,
	uow storage.UnitOfWork,
	eventBus interfaces.EventBus,
	cache interfaces.Cache,
	logger interfaces.Logger,
) *AccountService {
	return &AccountService{
		repo:       repo,
		uow:        uow,
		aggregator: reviewservice.NewRatingAggregator(),
		eventBus:   eventBus,
		cache:      cache,
		logger:     logger,
	}
}

// CreateUser registers a new account. Email is checked before username
// so an input colliding on both reports the email first.
func (s *AccountService) CreateUser(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	if err := s.checkUniqueness(ctx, user, nil); err != nil {
		return err
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", interfaces.Error(err))
		return err
	}

	s.eventBus.PublishAsync(ctx, events.NewEvent(events.UserCreated, user.ID.String(), map[string]interface{}{
		"username": user.Username,
	}))

	s.logger.Info("User created",
		interfaces.String("id", user.ID.String()),
		interfaces.String("username", user.Username))

	return nil
}

// GetUser retrieves a user by ID
func (s *AccountService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	cacheKey := "user:" + id.String()
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		if user, ok := cached.(*domain.User); ok {
			return user, nil
		}
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, user, userCacheTTL)

	return user, nil
}

// GetUserByUsername retrieves a user by username
func (s *AccountService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, errors.InvalidArgument("username must be specified")
	}
	return s.repo.GetByUsername(ctx, username)
}

// GetUserByEmail retrieves a user by email
func (s *AccountService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, errors.InvalidArgument("email must be specified")
	}
	return s.repo.GetByEmail(ctx, email)
}

// ListUsers lists all accounts
func (s *AccountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// UpdateUser replaces a user's fields, excluding the user itself from
// the uniqueness checks
func (s *AccountService) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := s.checkUniqueness(ctx, user, &user.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, "user:"+user.ID.String())

	s.eventBus.PublishAsync(ctx, events.NewEvent(events.UserUpdated, user.ID.String(), map[string]interface{}{
		"username": user.Username,
	}))

	return s.repo.GetByID(ctx, user.ID)
}

// DeleteUser removes an account and all its reviews in one
// transaction, then refreshes the ratings of the movies those reviews
// covered.
func (s *AccountService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	var movieIDs []uuid.UUID
	err := s.uow.Execute(ctx, func(repos storage.Repositories) error {
		exists, err := repos.Accounts.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NotFound("user not found")
		}

		movieIDs, err = repos.Reviews.DeleteByUser(ctx, id)
		if err != nil {
			return err
		}
		for _, movieID := range movieIDs {
			if err := s.aggregator.Recompute(ctx, repos, movieID); err != nil {
				return err
			}
		}

		return repos.Accounts.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(ctx, "user:"+id.String())
	for _, movieID := range movieIDs {
		// Each touched movie got a fresh derived rating.
		s.cache.Delete(ctx, catalogservice.MovieCacheKey(movieID))
	}

	s.eventBus.PublishAsync(ctx, events.NewEvent(events.UserDeleted, id.String(), nil))

	s.logger.Info("User deleted", interfaces.String("id", id.String()))

	return nil
}

func (s *AccountService) checkUniqueness(ctx context.Context, user *domain.User, excludeID *uuid.UUID) error {
	emailTaken, err := s.repo.EmailTaken(ctx, user.Email, excludeID)
	if err != nil {
		return err
	}
	if emailTaken {
		return errors.AlreadyInUse("email " + user.Email + " is already in use")
	}

	usernameTaken, err := s.repo.UsernameTaken(ctx, user.Username, excludeID)
	if err != nil {
		return err
	}
	if usernameTaken {
		return errors.AlreadyInUse("username " + user.Username + " is already in use")
	}

	return nil
}
