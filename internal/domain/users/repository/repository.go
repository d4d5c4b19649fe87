package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adityapratama/gymflow/internal/domain/users"
)

type User struct {
	db *gorm.DB
}

func NewUser(db *gorm.DB) *User {
	return &User{db: db}
}

func (u User) CreateUser(ctx context.Context, user users.User) error {
	return u.db.WithContext(ctx).Create(&user).Error
}

func (u User) FindUserByEmail(ctx context.Context, email string) (*users.User, error) {
	var user users.User
	err := u.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u User) FindUserByExtID(ctx context.Context, extID string) (*users.User, error) {
	var user users.User
	err := u.db.WithContext(ctx).Where("ext_id = ?", extID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u User) FindUsersByRole(ctx context.Context, role string) ([]users.User, error) {
	var result []users.User
	err := u.db.WithContext(ctx).Where("role = ?", role).Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u User) SaveUser(ctx context.Context, user *users.User) error {
	return u.db.WithContext(ctx).Save(user).Error
}

// DeleteUserByExtID removes the user and reports whether a row was deleted.
func (u User) DeleteUserByExtID(ctx context.Context, extID string) (bool, error) {
	res := u.db.WithContext(ctx).Where("ext_id = ?", extID).Delete(&users.User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
