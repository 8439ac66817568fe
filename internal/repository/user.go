package repository

import (
	"context"
	"errors"
	"fmt"

	"toko-backend/internal/apperr"
	"toko-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*model.User, error)
	UpdatePassword(ctx context.Context, userID, newHash string) error
	UpdateProfile(ctx context.Context, userID, name, picture string) error
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{db: db}
}

func (r *userRepoImpl) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: username or email already registered", apperr.ErrDuplicateIdentity)
	}
	if err != nil {
		return fmt.Errorf("%w: create user: %v", apperr.ErrPersistence, err)
	}
	return nil
}

func (r *userRepoImpl) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *userRepoImpl) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	return r.findOne(ctx, "google_id = ?", googleID)
}

func (r *userRepoImpl) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find user: %v", apperr.ErrPersistence, err)
	}
	return &user, nil
}

func (r *userRepoImpl) UpdatePassword(ctx context.Context, userID, newHash string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("password_hash", newHash)

	if result.Error != nil {
		return fmt.Errorf("%w: update password: %v", apperr.ErrPersistence, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *userRepoImpl) UpdateProfile(ctx context.Context, userID, name, picture string) error {
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"name":    name,
			"picture": picture,
		}).Error
	if err != nil {
		return fmt.Errorf("%w: update profile: %v", apperr.ErrPersistence, err)
	}
	return nil
}
