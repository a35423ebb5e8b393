package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, user *model.User) (*model.User, error)
	GetByID(tx *gorm.DB, id uint) (*model.User, error)
	GetByEmail(tx *gorm.DB, email string) (*model.User, error)
	GetByEmailOrUsername(tx *gorm.DB, email, username string) (*model.User, error)
	UpdateRefreshToken(tx *gorm.DB, id uint, refreshToken *string) error
	SetBanned(tx *gorm.DB, id uint, banned bool) error
	Count(tx *gorm.DB) (int64, error)
	CountByRole(tx *gorm.DB, role model.UserRole) (int64, error)
	CountBanned(tx *gorm.DB) (int64, error)
	ListCreatedBetween(tx *gorm.DB, from, to *time.Time) ([]model.User, error)
}
