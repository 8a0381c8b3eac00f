package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/catalog/domain"
	"github.com/cineflix/dbservice/internal/catalog/repository"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/events"
	"github.com/cineflix/dbservice/pkg/interfaces"
)

const movieCacheTTL = 5 * time.Minute

// MovieCacheKey is the cache key under which a movie is stored. Other
// services that move a movie's derived state use it to invalidate the
// cached copy.
func MovieCacheKey(id uuid.UUID) string {
	return "movie:" + id.String()
}

// CatalogService handles movie catalog business logic
type CatalogService struct {
	repo     repository.Repository
	eventBus interfaces.EventBus
	cache    interfaces.Cache
	logger   interfaces.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	repo repository.Repository,
	eventBus interfaces.EventBus,
	cache interfaces.Cache,
	logger interfaces.Logger,
) *CatalogService {
	return &CatalogService{
		repo:     repo,
		eventBus: eventBus,
		cache:    cache,
		logger:   logger,
	}
}

// CreateMovie adds a movie to the catalog. The derived rating always
// starts out unset regardless of what the caller supplied.
func (s *CatalogService) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	movie.Rating = nil
	if err := movie.Validate(); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByTitle(ctx, movie.Title)
	if err != nil {
		return err
	}
	if exists {
		return errors.AlreadyExists("movie with title " + movie.Title + " already exists")
	}

	if movie.ID == uuid.Nil {
		movie.ID = uuid.New()
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		s.logger.Error("Failed to create movie", interfaces.Error(err))
		return err
	}

	s.eventBus.PublishAsync(ctx, events.NewEvent(events.MovieCreated, movie.ID.String(), map[string]interface{}{
		"title": movie.Title,
	}))

	s.logger.Info("Movie created",
		interfaces.String("id", movie.ID.String()),
		interfaces.String("title", movie.Title))

	return nil
}

// GetMovie retrieves a movie by ID
func (s *CatalogService) GetMovie(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	cacheKey := MovieCacheKey(id)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		if movie, ok := cached.(*domain.Movie); ok {
			return movie, nil
		}
	}

	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, movie, movieCacheTTL)

	return movie, nil
}

// GetMovieByTitle retrieves a movie by its exact title
func (s *CatalogService) GetMovieByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	if title == "" {
		return nil, errors.InvalidArgument("title must be specified")
	}
	return s.repo.GetByTitle(ctx, title)
}

// ListMovies lists the whole catalog
func (s *CatalogService) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	return s.repo.List(ctx)
}

// ListMoviesByGenre lists movies carrying the given genre
func (s *CatalogService) ListMoviesByGenre(ctx context.Context, genre string) ([]*domain.Movie, error) {
	if genre == "" {
		return nil, errors.InvalidArgument("genre must be specified")
	}
	return s.repo.ListByGenre(ctx, genre)
}

// ListMoviesByDirector lists movies credited to the given director
func (s *CatalogService) ListMoviesByDirector(ctx context.Context, director string) ([]*domain.Movie, error) {
	if director == "" {
		return nil, errors.InvalidArgument("director must be specified")
	}
	return s.repo.ListByDirector(ctx, director)
}

// ListMoviesByActor lists movies featuring the given actor
func (s *CatalogService) ListMoviesByActor(ctx context.Context, actor string) ([]*domain.Movie, error) {
	if actor == "" {
		return nil, errors.InvalidArgument("actor must be specified")
	}
	return s.repo.ListByActor(ctx, actor)
}

// UpdateMovie replaces a movie's descriptive fields. The derived rating
// is not touched here; only review mutations move it.
func (s *CatalogService) UpdateMovie(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	if movie.Title != existing.Title {
		taken, err := s.repo.ExistsByTitle(ctx, movie.Title)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.AlreadyExists("movie with title " + movie.Title + " already exists")
		}
	}

	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, MovieCacheKey(movie.ID))

	s.eventBus.PublishAsync(ctx, events.NewEvent(events.MovieUpdated, movie.ID.String(), map[string]interface{}{
		"title": movie.Title,
	}))

	return s.repo.GetByID(ctx, movie.ID)
}

// DeleteMovie removes a movie and its attribute rows. Reviews and
// library entries referencing the movie are left to their own services.
func (s *CatalogService) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(ctx, MovieCacheKey(id))

	s.eventBus.PublishAsync(ctx, events.NewEvent(events.MovieDeleted, id.String(), nil))

	s.logger.Info("Movie deleted", interfaces.String("id", id.String()))

	return nil
}
