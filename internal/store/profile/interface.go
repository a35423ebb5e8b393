package profile

import (
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/model"
)

// ListFilter narrows the public profile listing. Zero values mean "no filter".
type ListFilter struct {
	Skill        string
	Location     string
	Availability model.Availability
	Search       string
	Page         int
	PageSize     int
}

type IStore interface {
	Create(tx *gorm.DB, profile *model.Profile) (*model.Profile, error)
	GetByID(tx *gorm.DB, id uint) (*model.Profile, error)
	GetByUserID(tx *gorm.DB, userID uint) (*model.Profile, error)
	Save(tx *gorm.DB, profile *model.Profile) (*model.Profile, error)
	Delete(tx *gorm.DB, id uint) error
	ListPublic(tx *gorm.DB, filter ListFilter) ([]model.Profile, int64, error)
	SetBannedByUserID(tx *gorm.DB, userID uint, banned bool) error
}
