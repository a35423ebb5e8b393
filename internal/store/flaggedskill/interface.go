package flaggedskill

import (
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, flaggedSkill *model.FlaggedSkill) (*model.FlaggedSkill, error)
	GetByID(tx *gorm.DB, id uint) (*model.FlaggedSkill, error)
	List(tx *gorm.DB, status *model.FlaggedSkillStatus) ([]model.FlaggedSkill, error)
	TransitionStatus(tx *gorm.DB, id uint, from, to model.FlaggedSkillStatus) (bool, error)
	CountByStatus(tx *gorm.DB, status model.FlaggedSkillStatus) (int64, error)
}
