package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, user *model.User) (*model.User, error) {
	return user, tx.Create(user).Error
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	err := tx.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetByEmail(tx *gorm.DB, email string) (*model.User, error) {
	var user model.User
	err := tx.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetByEmailOrUsername(tx *gorm.DB, email, username string) (*model.User, error) {
	var user model.User
	err := tx.Where("email = ? OR username = ?", email, username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) UpdateRefreshToken(tx *gorm.DB, id uint, refreshToken *string) error {
	return tx.Model(&model.User{}).
		Where("id = ?", id).
		Update("refresh_token", refreshToken).Error
}

func (s *Store) SetBanned(tx *gorm.DB, id uint, banned bool) error {
	return tx.Model(&model.User{}).
		Where("id = ?", id).
		Update("is_banned", banned).Error
}

func (s *Store) Count(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (s *Store) CountByRole(tx *gorm.DB, role model.UserRole) (int64, error) {
	var count int64
	err := tx.Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (s *Store) CountBanned(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&model.User{}).Where("is_banned = ?", true).Count(&count).Error
	return count, err
}

func (s *Store) ListCreatedBetween(tx *gorm.DB, from, to *time.Time) ([]model.User, error) {
	q := tx.Model(&model.User{})
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}

	var users []model.User
	err := q.Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
