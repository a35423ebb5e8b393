package profile

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, profile *model.Profile) (*model.Profile, error) {
	err := tx.Create(profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("user already has a profile")
		}
		return nil, err
	}
	return profile, nil
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.Profile, error) {
	var profile model.Profile
	err := tx.Preload("User").First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) GetByUserID(tx *gorm.DB, userID uint) (*model.Profile, error) {
	var profile model.Profile
	err := tx.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) Save(tx *gorm.DB, profile *model.Profile) (*model.Profile, error) {
	return profile, tx.Save(profile).Error
}

func (s *Store) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Profile{}, id).Error
}

func (s *Store) ListPublic(tx *gorm.DB, filter ListFilter) ([]model.Profile, int64, error) {
	q := tx.Model(&model.Profile{}).
		Where("visibility = ?", model.ProfileVisibilityPublic).
		Where("is_banned = ?", false)

	if filter.Skill != "" {
		q = q.Where("skills_offered::text ILIKE ?", "%"+filter.Skill+"%")
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Availability != "" {
		q = q.Where("availability = ?", filter.Availability)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(
			"name ILIKE ? OR bio ILIKE ? OR skills_offered::text ILIKE ? OR skills_wanted::text ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []model.Profile
	err := q.Preload("User").
		Order("created_at DESC, id DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (s *Store) SetBannedByUserID(tx *gorm.DB, userID uint, banned bool) error {
	return tx.Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Update("is_banned", banned).Error
}
