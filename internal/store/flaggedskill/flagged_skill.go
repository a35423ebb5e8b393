package flaggedskill

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

func (s *Store) Create(tx *gorm.DB, flaggedSkill *model.FlaggedSkill) (*model.FlaggedSkill, error) {
	return flaggedSkill, tx.Create(flaggedSkill).Error
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.FlaggedSkill, error) {
	var flaggedSkill model.FlaggedSkill
	err := tx.Preload("User").First(&flaggedSkill, id).Error
	if err != nil {
		return nil, err
	}
	return &flaggedSkill, nil
}

func (s *Store) List(tx *gorm.DB, status *model.FlaggedSkillStatus) ([]model.FlaggedSkill, error) {
	q := tx.Preload("User")
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var flaggedSkills []model.FlaggedSkill
	err := q.Order("created_at DESC, id DESC").Find(&flaggedSkills).Error
	if err != nil {
		return nil, err
	}
	return flaggedSkills, nil
}

// TransitionStatus mirrors the swap request store: resolution only lands if
// the flag is still in the expected prior state.
func (s *Store) TransitionStatus(tx *gorm.DB, id uint, from, to model.FlaggedSkillStatus) (bool, error) {
	res := tx.Model(&model.FlaggedSkill{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) CountByStatus(tx *gorm.DB, status model.FlaggedSkillStatus) (int64, error) {
	var count int64
	err := tx.Model(&model.FlaggedSkill{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
