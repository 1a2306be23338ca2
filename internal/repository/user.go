package repository

import (
	"folio_fetch/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// UserRepo provides credential storage. Users are created at signup and never
// updated or deleted.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a UserRepo.
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user. A username collision is reported as ErrDuplicateKey.
func (r *UserRepo) Create(user *domain.User) error {
	if r.db == nil {
		return ErrConnectionUnavailable
	}
	if err := r.db.Create(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

// FindByUsername fetches the user with the given username, or ErrNotFound.
func (r *UserRepo) FindByUsername(username string) (*domain.User, error) {
	if r.db == nil {
		return nil, ErrConnectionUnavailable
	}
	var user domain.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
