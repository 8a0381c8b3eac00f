package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cineflix/dbservice/internal/review/domain"
	"github.com/cineflix/dbservice/pkg/errors"
)

// GormRepository implements Repository backed by GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a review repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, review *domain.Review) error {
	row := toRow(review)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return errors.Wrap(errors.ErrorTypeInternal, "failed to create review", err)
	}
	review.CreatedAt = row.CreatedAt
	review.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *GormRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var row Review
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("review not found")
		}
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to get review", err)
	}
	return toDomain(&row), nil
}

func (r *GormRepository) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*domain.Review, error) {
	var rows []Review
	err := r.db.WithContext(ctx).Where("movie_id = ?", movieID).Order("created_at").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to list reviews by movie", err)
	}
	return toDomainSlice(rows), nil
}

func (r *GormRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	var rows []Review
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to list reviews by user", err)
	}
	return toDomainSlice(rows), nil
}

// Update rewrites the review's rating and comment; the movie and user
// references are immutable.
func (r *GormRepository) Update(ctx context.Context, review *domain.Review) error {
	result := r.db.WithContext(ctx).Model(&Review{}).Where("id = ?", review.ID).Updates(map[string]interface{}{
		"rating":  review.Rating,
		"comment": review.Comment,
	})
	if result.Error != nil {
		return errors.Wrap(errors.ErrorTypeInternal, "failed to update review", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("review not found")
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Review{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(errors.ErrorTypeInternal, "failed to delete review", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("review not found")
	}
	return nil
}

func (r *GormRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var movieIDs []uuid.UUID
	err := r.db.WithContext(ctx).Model(&Review{}).
		Distinct("movie_id").
		Where("user_id = ?", userID).
		Pluck("movie_id", &movieIDs).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to list reviewed movies", err)
	}

	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&Review{}).Error; err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to delete reviews", err)
	}
	return movieIDs, nil
}

func toDomainSlice(rows []Review) []*domain.Review {
	reviews := make([]*domain.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, toDomain(&rows[i]))
	}
	return reviews
}
