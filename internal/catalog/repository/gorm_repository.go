package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cineflix/dbservice/internal/catalog/domain"
	"github.com/cineflix/dbservice/pkg/errors"
)

// GormRepository implements Repository backed by GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a movie repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, movie *domain.Movie) error {
	row := toRow(movie)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.AlreadyExists("movie with title " + movie.Title + " already exists")
		}
		return errors.Wrap(errors.ErrorTypeInternal, "failed to create movie", err)
	}
	movie.CreatedAt = row.CreatedAt
	movie.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *GormRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	var row Movie
	err := r.withAssociations(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("movie not found")
		}
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to get movie", err)
	}
	return toDomain(&row), nil
}

func (r *GormRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	var row Movie
	err := r.withAssociations(ctx).First(&row, "title = ?", title).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("movie not found")
		}
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to get movie", err)
	}
	return toDomain(&row), nil
}

func (r *GormRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	var rows []Movie
	if err := r.withAssociations(ctx).Order("title").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to list movies", err)
	}
	return toDomainSlice(rows), nil
}

func (r *GormRepository) ListByGenre(ctx context.Context, genre string) ([]*domain.Movie, error) {
	var rows []Movie
	err := r.withAssociations(ctx).
		Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
		Where("mg.genre = ?", genre).
		Order("title").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to list movies by genre", err)
	}
	return toDomainSlice(rows), nil
}

func (r *GormRepository) ListByDirector(ctx context.Context, director string) ([]*domain.Movie, error) {
	var rows []Movie
	err := r.withAssociations(ctx).
		Joins("JOIN movie_directors md ON md.movie_id = movies.id").
		Where("md.director = ?", director).
		Order("title").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to list movies by director", err)
	}
	return toDomainSlice(rows), nil
}

func (r *GormRepository) ListByActor(ctx context.Context, actor string) ([]*domain.Movie, error) {
	var rows []Movie
	err := r.withAssociations(ctx).
		Joins("JOIN movie_actors ma ON ma.movie_id = movies.id").
		Where("ma.actor = ?", actor).
		Order("title").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to list movies by actor", err)
	}
	return toDomainSlice(rows), nil
}

// Update rewrites the movie's scalar columns and replaces its attribute
// rows. The derived rating column is left untouched.
func (r *GormRepository) Update(ctx context.Context, movie *domain.Movie) error {
	row := toRow(movie)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Movie{}).Where("id = ?", movie.ID).Updates(map[string]interface{}{
			"title":        row.Title,
			"run_time":     row.RunTime,
			"release_date": row.ReleaseDate,
			"description":  row.Description,
			"poster_url":   row.PosterURL,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NotFound("movie not found")
		}

		for _, model := range []interface{}{&MovieGenre{}, &MovieDirector{}, &MovieActor{}} {
			if err := tx.Where("movie_id = ?", movie.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		if len(row.Genres) > 0 {
			if err := tx.Create(&row.Genres).Error; err != nil {
				return err
			}
		}
		if len(row.Directors) > 0 {
			if err := tx.Create(&row.Directors).Error; err != nil {
				return err
			}
		}
		if len(row.Actors) > 0 {
			if err := tx.Create(&row.Actors).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		if errors.IsDuplicateError(err) {
			return errors.AlreadyExists("movie with title " + movie.Title + " already exists")
		}
		return errors.Wrap(errors.ErrorTypeInternal, "failed to update movie", err)
	}
	return nil
}

func (r *GormRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating *float64) error {
	result := r.db.WithContext(ctx).Model(&Movie{}).Where("id = ?", id).Update("rating", rating)
	if result.Error != nil {
		return errors.Wrap(errors.ErrorTypeInternal, "failed to update movie rating", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("movie not found")
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Movie{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(errors.ErrorTypeInternal, "failed to delete movie", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("movie not found")
	}
	return nil
}

func (r *GormRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Movie{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(errors.ErrorTypeInternal, "failed to check movie", err)
	}
	return count > 0, nil
}

func (r *GormRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Movie{}).Where("title = ?", title).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(errors.ErrorTypeInternal, "failed to check movie title", err)
	}
	return count > 0, nil
}

func (r *GormRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&Movie{}).
		Preload("Genres").
		Preload("Directors").
		Preload("Actors")
}

func toDomainSlice(rows []Movie) []*domain.Movie {
	movies := make([]*domain.Movie, 0, len(rows))
	for i := range rows {
		movies = append(movies, toDomain(&rows[i]))
	}
	return movies
}
