package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cineflix/dbservice/internal/account/domain"
	"github.com/cineflix/dbservice/pkg/errors"
)

// GormRepository implements Repository backed by GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a user repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, user *domain.User) error {
	row := toRow(user)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.AlreadyInUse("email " + user.Email + " is already in use")
		}
		return errors.Wrap(errors.ErrorTypeInternal, "failed to create user", err)
	}
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *GormRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row User
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user not found")
		}
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to get user", err)
	}
	return toDomain(&row), nil
}

func (r *GormRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row User
	err := r.db.WithContext(ctx).First(&row, "username = ?", username).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user not found")
		}
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to get user", err)
	}
	return toDomain(&row), nil
}

func (r *GormRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row User
	err := r.db.WithContext(ctx).First(&row, "email = ?", email).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user not found")
		}
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to get user", err)
	}
	return toDomain(&row), nil
}

func (r *GormRepository) List(ctx context.Context) ([]*domain.User, error) {
	var rows []User
	if err := r.db.WithContext(ctx).Order("username").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "failed to list users", err)
	}
	users := make([]*domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, toDomain(&rows[i]))
	}
	return users, nil
}

func (r *GormRepository) Update(ctx context.Context, user *domain.User) error {
	row := toRow(user)
	result := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"username":        row.Username,
		"email":           row.Email,
		"hashed_password": row.HashedPassword,
		"user_role":       row.UserRole,
	})
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.AlreadyInUse("email " + user.Email + " is already in use")
		}
		return errors.Wrap(errors.ErrorTypeInternal, "failed to update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("user not found")
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(errors.ErrorTypeInternal, "failed to delete user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("user not found")
	}
	return nil
}

func (r *GormRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(errors.ErrorTypeInternal, "failed to check user", err)
	}
	return count > 0, nil
}

func (r *GormRepository) EmailTaken(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	return r.taken(ctx, "email = ?", email, excludeID)
}

func (r *GormRepository) UsernameTaken(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error) {
	return r.taken(ctx, "username = ?", username, excludeID)
}

func (r *GormRepository) taken(ctx context.Context, query, value string, excludeID *uuid.UUID) (bool, error) {
	db := r.db.WithContext(ctx).Model(&User{}).Where(query, value)
	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, errors.Wrap(errors.ErrorTypeInternal, "failed to check user", err)
	}
	return count > 0, nil
}
