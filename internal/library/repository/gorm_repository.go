package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cineflix/dbservice/internal/library/domain"
	"github.com/cineflix/dbservice/pkg/errors"
)

// GormFavoriteRepository implements ListRepository over the favorites
// table.
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a favorites repository.
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

func (r *GormFavoriteRepository) Add(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	row := &Favorite{UserID: userID, MovieID: movieID}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return false, nil
		}
		return false, errors.Wrap(errors.ErrorTypeInternal, "failed to add favorite", err)
	}
	return true, nil
}

func (r *GormFavoriteRepository) Remove(ctx context.Context, userID, movieID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&Favorite{}).Error
	if err != nil {
		return errors.Wrap(errors.ErrorTypeInternal, "failed to remove favorite", err)
	}
	return nil
}

func (r *GormFavoriteRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.Entry, error) {
	var rows []*Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_on").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to list favorites", err)
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries, nil
}

func (r *GormFavoriteRepository) Contains(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(errors.ErrorTypeInternal, "failed to check favorite", err)
	}
	return count > 0, nil
}

// GormWatchListRepository implements ListRepository over the watch_list
// table.
type GormWatchListRepository struct {
	db *gorm.DB
}

// NewGormWatchListRepository creates a watch list repository.
func NewGormWatchListRepository(db *gorm.DB) *GormWatchListRepository {
	return &GormWatchListRepository{db: db}
}

func (r *GormWatchListRepository) Add(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	row := &WatchListEntry{UserID: userID, MovieID: movieID}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return false, nil
		}
		return false, errors.Wrap(errors.ErrorTypeInternal, "failed to add watch list entry", err)
	}
	return true, nil
}

func (r *GormWatchListRepository) Remove(ctx context.Context, userID, movieID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&WatchListEntry{}).Error
	if err != nil {
		return errors.Wrap(errors.ErrorTypeInternal, "failed to remove watch list entry", err)
	}
	return nil
}

func (r *GormWatchListRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.Entry, error) {
	var rows []*WatchListEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_on").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to list watch list", err)
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries, nil
}

func (r *GormWatchListRepository) Contains(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&WatchListEntry{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(errors.ErrorTypeInternal, "failed to check watch list entry", err)
	}
	return count > 0, nil
}
