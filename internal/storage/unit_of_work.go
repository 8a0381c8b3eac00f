package storage

import (
	"context"

	"gorm.io/gorm"

	accountrepo "github.com/cineflix/dbservice/internal/account/repository"
	catalogrepo "github.com/cineflix/dbservice/internal/catalog/repository"
	reviewrepo "github.com/cineflix/dbservice/internal/review/repository"
)

// Repositories bundles transaction-scoped repositories so a multi-step
// mutation can touch several aggregates atomically.
type Repositories struct {
	Catalog  catalogrepo.Repository
	Accounts accountrepo.Repository
	Reviews  reviewrepo.Repository
}

// UnitOfWork runs a function against repositories sharing one
// transaction; the transaction commits iff the function returns nil.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

// GormUnitOfWork implements UnitOfWork on a GORM database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a GORM-backed unit of work.
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute runs fn inside a database transaction.
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(repos Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repositories{
			Catalog:  catalogrepo.NewGormRepository(tx),
			Accounts: accountrepo.NewGormRepository(tx),
			Reviews:  reviewrepo.NewGormRepository(tx),
		})
	})
}
