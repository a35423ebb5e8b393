package model

import (
	"gorm.io/gorm"
)

type FlaggedSkillStatus string

const (
	FlaggedSkillStatusPending  FlaggedSkillStatus = "pending"
	FlaggedSkillStatusApproved FlaggedSkillStatus = "approved"
	FlaggedSkillStatusRejected FlaggedSkillStatus = "rejected"
)

func (s FlaggedSkillStatus) IsValid() bool {
	switch s {
	case FlaggedSkillStatusPending, FlaggedSkillStatusApproved, FlaggedSkillStatusRejected:
		return true
	}
	return false
}

// IsResolution reports whether s is a state an admin may move a pending flag to.
func (s FlaggedSkillStatus) IsResolution() bool {
	return s == FlaggedSkillStatusApproved || s == FlaggedSkillStatusRejected
}

type FlaggedSkill struct {
	gorm.Model
	UserID uint               `gorm:"column:user_id;not null;index" json:"user_id"`
	Skill  string             `gorm:"column:skill;type:varchar(30);not null;index" json:"skill"`
	Reason string             `gorm:"column:reason;type:varchar(500);not null" json:"reason"`
	Status FlaggedSkillStatus `gorm:"column:status;type:varchar(20);not null;default:'pending';index" json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (FlaggedSkill) TableName() string {
	return "flagged_skills"
}
