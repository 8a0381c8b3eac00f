package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/account/domain"
)

// User is the users table row. Only email carries a uniqueness
// constraint at the storage level; username collisions are rejected in
// the service layer.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username       string    `gorm:"not null;size:50;index"`
	Email          string    `gorm:"uniqueIndex;not null;size:255"`
	HashedPassword string    `gorm:"column:hashed_password;not null;size:255"`
	UserRole       string    `gorm:"column:user_role;not null;size:20"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (User) TableName() string { return "users" }

// Models returns the account models for migration.
func Models() []interface{} {
	return []interface{}{&User{}}
}

func toRow(u *domain.User) *User {
	return &User{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		UserRole:       string(u.Role),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toDomain(row *User) *domain.User {
	return &domain.User{
		ID:             row.ID,
		Username:       row.Username,
		Email:          row.Email,
		HashedPassword: row.HashedPassword,
		Role:           domain.Role(row.UserRole),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
