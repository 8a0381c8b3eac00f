package service

import (
	"context"

	"github.com/google/uuid"

	accountrepo "github.com/cineflix/dbservice/internal/account/repository"
	catalogrepo "github.com/cineflix/dbservice/internal/catalog/repository"
	"github.com/cineflix/dbservice/internal/library/repository"
	"github.com/cineflix/dbservice/pkg/events"
	"github.com/cineflix/dbservice/pkg/interfaces"
)

// LibraryService handles per-user favorites and watch lists. Adds that
// reference a missing user or movie, or that duplicate an existing
// entry, report success=false rather than an error.
type LibraryService struct {
	favorites repository.ListRepository
	watchList repository.ListRepository
	movies    catalogrepo.Repository
	users     accountrepo.Repository
	eventBus  interfaces.EventBus
	logger    interfaces.Logger
}

// NewLibraryService creates a new library service
func NewLibraryService(
	favorites repository.ListRepository,
	watchList repository.ListRepository,
	movies catalogrepo.Repository,
	users accountrepo.Repository,
	eventBus interfaces.EventBus,
	logger interfaces.Logger,
) *LibraryService {
	return &LibraryService{
		favorites: favorites,
		watchList: watchList,
		movies:    movies,
		users:     users,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// AddFavorite adds a movie to the user's favorites
func (s *LibraryService) AddFavorite(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	return s.add(ctx, s.favorites, events.FavoriteAdded, userID, movieID)
}

// RemoveFavorite removes a movie from the user's favorites
func (s *LibraryService) RemoveFavorite(ctx context.Context, userID, movieID uuid.UUID) error {
	return s.remove(ctx, s.favorites, events.FavoriteRemoved, userID, movieID)
}

// ListFavorites lists the user's favorite movie IDs
func (s *LibraryService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.listMovies(ctx, s.favorites, userID)
}

// AddWatchListMovie adds a movie to the user's watch list
func (s *LibraryService) AddWatchListMovie(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	return s.add(ctx, s.watchList, events.WatchListAdded, userID, movieID)
}

// RemoveWatchListMovie removes a movie from the user's watch list
func (s *LibraryService) RemoveWatchListMovie(ctx context.Context, userID, movieID uuid.UUID) error {
	return s.remove(ctx, s.watchList, events.WatchListRemoved, userID, movieID)
}

// ListWatchListMovies lists the user's watch list movie IDs
func (s *LibraryService) ListWatchListMovies(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.listMovies(ctx, s.watchList, userID)
}

func (s *LibraryService) listMovies(ctx context.Context, list repository.ListRepository, userID uuid.UUID) ([]uuid.UUID, error) {
	entries, err := list.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	movieIDs := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		movieIDs = append(movieIDs, entry.MovieID)
	}
	return movieIDs, nil
}

func (s *LibraryService) add(ctx context.Context, list repository.ListRepository, eventType string, userID, movieID uuid.UUID) (bool, error) {
	userExists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return false, err
	}
	movieExists, err := s.movies.Exists(ctx, movieID)
	if err != nil {
		return false, err
	}
	if !userExists || !movieExists {
		return false, nil
	}

	added, err := list.Add(ctx, userID, movieID)
	if err != nil {
		s.logger.Error("Failed to add library entry", interfaces.Error(err))
		return false, err
	}
	if !added {
		return false, nil
	}

	s.eventBus.PublishAsync(ctx, events.NewEvent(eventType, userID.String(), map[string]interface{}{
		"movie_id": movieID.String(),
	}))

	return true, nil
}

func (s *LibraryService) remove(ctx context.Context, list repository.ListRepository, eventType string, userID, movieID uuid.UUID) error {
	if err := list.Remove(ctx, userID, movieID); err != nil {
		s.logger.Error("Failed to remove library entry", interfaces.Error(err))
		return err
	}

	s.eventBus.PublishAsync(ctx, events.NewEvent(eventType, userID.String(), map[string]interface{}{
		"movie_id": movieID.String(),
	}))

	return nil
}
