package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/validation"
)

// Role is a user's access role.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole parses a role name case-insensitively.
func ParseRole(value string) (Role, error) {
	switch strings.ToUpper(value) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleUser):
		return RoleUser, nil
	default:
		return "", errors.InvalidArgument("role must be ADMIN or USER")
	}
}

// User is an account aggregate root. Passwords arrive pre-hashed; this
// service never sees plaintext credentials.
type User struct {
	ID             uuid.UUID
	Username       string `validate:"required,max=50"`
	Email          string `validate:"required,email,max=255"`
	HashedPassword string `validate:"required"`
	Role           Role   `validate:"required"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks field-level constraints.
func (u *User) Validate() error {
	if err := validation.Struct(u); err != nil {
		return err
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	return nil
}
